package admin

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
)

// exportOverviewCSVHandler streams the per-location overview as CSV.
func (h *Handler) exportOverviewCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		filter, err := h.parseFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		overview := h.dashboards.Overview(ctx, filter)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName("csv", time.Now().In(h.location))))

		writer := csv.NewWriter(w)
		_ = writer.Write(exportColumns)
		for _, stats := range overview.Locations {
			_ = writer.Write(exportRow(stats))
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			h.logger.WithError(err).Error("CSV export write failed")
		}
	}
}

// exportOverviewXLSXHandler renders the same overview as a workbook with a
// headline block above the location table.
func (h *Handler) exportOverviewXLSXHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		filter, err := h.parseFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		overview := h.dashboards.Overview(ctx, filter)

		file := excelize.NewFile()
		defer file.Close()

		const sheet = "Overview"
		if err := file.SetSheetName("Sheet1", sheet); err != nil {
			h.logger.WithError(err).Error("XLSX export sheet setup failed")
			common.WriteError(h.logger, w, http.StatusInternalServerError, "could not build the export")
			return
		}

		headline := [][]any{
			{"Total submissions", overview.TotalSubmissions},
			{"Satisfaction", overview.Satisfaction},
			{"Satisfaction label", string(overview.SatisfactionLabel)},
			{"Recommend rate", overview.RecommendRate},
		}
		row := 1
		for _, pair := range headline {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := file.SetSheetRow(sheet, cell, &pair); err != nil {
				h.logger.WithError(err).Error("XLSX export headline write failed")
				common.WriteError(h.logger, w, http.StatusInternalServerError, "could not build the export")
				return
			}
			row++
		}

		row++
		headerCell, _ := excelize.CoordinatesToCellName(1, row)
		header := make([]any, len(exportColumns))
		for i, col := range exportColumns {
			header[i] = col
		}
		if err := file.SetSheetRow(sheet, headerCell, &header); err != nil {
			h.logger.WithError(err).Error("XLSX export header write failed")
			common.WriteError(h.logger, w, http.StatusInternalServerError, "could not build the export")
			return
		}

		for _, stats := range overview.Locations {
			row++
			cell, _ := excelize.CoordinatesToCellName(1, row)
			values := make([]any, 0, len(exportColumns))
			values = append(values, stats.Location.Name, common.DisplayLocationType(stats.Location.Type), stats.VisitCount, stats.RatingCount, stats.RecommendRate)
			for _, avg := range []float64{
				stats.Averages.Reception,
				stats.Averages.Professionalism,
				stats.Averages.Understanding,
				stats.Averages.PromptnessCare,
				stats.Averages.PromptnessFeedback,
				stats.Averages.Overall,
				stats.Satisfaction,
			} {
				values = append(values, avg)
			}
			if err := file.SetSheetRow(sheet, cell, &values); err != nil {
				h.logger.WithError(err).Error("XLSX export row write failed")
				common.WriteError(h.logger, w, http.StatusInternalServerError, "could not build the export")
				return
			}
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName("xlsx", time.Now().In(h.location))))

		if err := file.Write(w); err != nil {
			h.logger.WithError(err).Error("XLSX export write failed")
		}
	}
}
