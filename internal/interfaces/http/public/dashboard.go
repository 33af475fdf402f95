package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// overviewHandler serves the landing tab of the dashboard: headline numbers,
// the rating distribution, priorities and all per-location statistics in one
// payload.
func (h *Handler) overviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter, err := h.parseSubmissionFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		overview := h.dashboards.Overview(ctx, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, overviewResponse{
			TotalSubmissions:  overview.TotalSubmissions,
			Satisfaction:      overview.Satisfaction,
			SatisfactionLabel: string(overview.SatisfactionLabel),
			RecommendRate:     overview.RecommendRate,
			Distribution:      buildDistributionEntries(overview.Distribution),
			Priorities:        buildPriorityResponses(overview.Priorities),
			Locations:         buildLocationStatsResponses(overview.Locations),
		})
	}
}

// locationStatsHandler serves one location-type tab, such as departments or
// wards. The type query parameter is required.
func (h *Handler) locationStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		locType, err := domain.NewLocationType(strings.TrimSpace(query.Get("type")))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "unknown location type")
			return
		}

		filter, err := h.parseSubmissionFilter(query)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		stats := h.locations.StatsByType(ctx, locType, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, locationListResponse{
			Type:  string(locType),
			Items: buildLocationStatsResponses(stats),
		})
	}
}

// prioritiesHandler serves the ranked improvement list on its own, for the
// screen that only renders the priority cards.
func (h *Handler) prioritiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter, err := h.parseSubmissionFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		priorities := h.dashboards.Priorities(ctx, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, priorityListResponse{
			Items: buildPriorityResponses(priorities),
		})
	}
}

// visitTimeHandler serves the hour-of-day and visit-recency breakdowns.
func (h *Handler) visitTimeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter, err := h.parseSubmissionFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		breakdown := h.dashboards.VisitTime(ctx, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, visitTimeResponse{
			Hourly: buildGroupStatsResponses(breakdown.Hourly, nil),
			Recency: buildGroupStatsResponses(breakdown.Recency, func(key string) string {
				return common.DisplayVisitRecency(domain.VisitRecency(key))
			}),
		})
	}
}

// demographicsHandler serves the user-type and patient-type breakdowns.
func (h *Handler) demographicsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter, err := h.parseSubmissionFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		breakdown := h.dashboards.Demographics(ctx, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, demographicsResponse{
			UserTypes: buildGroupStatsResponses(breakdown.UserTypes, func(key string) string {
				return common.DisplayUserType(domain.UserType(key))
			}),
			PatientTypes: buildGroupStatsResponses(breakdown.PatientTypes, func(key string) string {
				return common.DisplayPatientType(domain.PatientType(key))
			}),
		})
	}
}
