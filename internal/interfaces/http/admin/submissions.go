package admin

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	"github.com/careloop/patient-survey-services/api/internal/survey/application"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// submissionListHandler returns raw submissions for the admin screen,
// newest first, with the computed satisfaction attached per row.
func (h *Handler) submissionListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter, err := h.parseFilter(query)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		paging := application.Paging{}
		paging.Page, _ = common.ParsePositiveInt(query.Get("page"), 1)
		paging.Limit, _ = common.ParsePositiveInt(query.Get("limit"), 20)

		subs, total, err := h.submissions.List(ctx, filter, paging)
		if err != nil {
			h.logger.WithError(err).Error("admin submission list fetch failed")
			common.WriteError(h.logger, w, http.StatusInternalServerError, "could not load submissions")
			return
		}

		items := make([]adminSubmissionResponse, 0, len(subs))
		for _, sub := range subs {
			items = append(items, buildAdminSubmissionResponse(sub, insights.SubmissionSatisfaction(sub.Ratings)))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminSubmissionListResponse{
			Items: items,
			Page:  paging.Page,
			Limit: paging.Limit,
			Total: total,
		})
	}
}

func (h *Handler) parseFilter(query url.Values) (application.SubmissionFilter, error) {
	filter := application.SubmissionFilter{}

	from, ok := common.ParseDate(query.Get("from"), h.location)
	if !ok {
		return filter, errBadDate
	}
	to, ok := common.ParseDate(query.Get("to"), h.location)
	if !ok {
		return filter, errBadDate
	}
	filter.From = from
	filter.To = common.EndOfDay(to)

	if raw := strings.TrimSpace(query.Get("purpose")); raw != "" {
		purpose, err := domain.NewVisitPurpose(raw)
		if err != nil {
			return filter, err
		}
		filter.VisitPurpose = purpose
	}

	return filter, nil
}
