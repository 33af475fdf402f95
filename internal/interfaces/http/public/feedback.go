package public

import (
	"context"
	"net/http"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
)

// maxRecentConcerns caps the raw complaint excerpts returned alongside the
// word frequency tables.
const maxRecentConcerns = 20

// feedbackHandler serves the free-text analysis tab: word frequency tables
// for the three text collections plus the newest raw complaints.
func (h *Handler) feedbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter, err := h.parseSubmissionFilter(query)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		limit, _ := common.ParsePositiveInt(query.Get("limit"), common.DefaultFeedbackWordLimit)

		themes := h.feedback.Themes(ctx, filter, limit)
		concerns := h.feedback.Concerns(ctx, filter)
		if len(concerns) > maxRecentConcerns {
			concerns = concerns[:maxRecentConcerns]
		}

		recent := make([]concernResponse, 0, len(concerns))
		for _, concern := range concerns {
			recent = append(recent, concernResponse{
				LocationID:  concern.LocationID,
				Text:        concern.Text,
				SubmittedAt: concern.SubmittedAt,
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, feedbackResponse{
			Concerns:        buildWordCountPayloads(themes.Concerns),
			Recommendations: buildWordCountPayloads(themes.Recommendations),
			WhyNotRecommend: buildWordCountPayloads(themes.WhyNotRecommend),
			ConcernCount:    themes.ConcernCount,
			RecentConcerns:  recent,
		})
	}
}
