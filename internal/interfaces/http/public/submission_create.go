package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	"github.com/careloop/patient-survey-services/api/internal/survey/application"
)

// submissionCreateHandler accepts one anonymous survey response. Validation
// that needs domain knowledge lives in the command service; this layer only
// enforces payload shape and size.
func (h *Handler) submissionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		body := http.MaxBytesReader(w, r.Body, common.MaxSubmissionRequestBody)
		defer body.Close()

		var req submissionCreateRequest
		decoder := json.NewDecoder(body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				common.WriteError(h.logger, w, http.StatusBadRequest, "request body is required")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}

		if err := validateSubmissionRequest(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		submission, err := h.submissions.Submit(ctx, buildSubmitCommand(req))
		if err != nil {
			if errors.Is(err, application.ErrInvalidSubmission) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.WithError(err).Error("submission intake failed")
			common.WriteError(h.logger, w, http.StatusInternalServerError, "could not store the submission")
			return
		}

		satisfaction := insights.SubmissionSatisfaction(submission.Ratings)

		// Low scores page the quality team. The response must not wait on
		// the messenger gateway.
		if satisfaction > 0 && satisfaction < lowSatisfactionAlertThreshold {
			go h.notifyLowSatisfaction(context.WithoutCancel(ctx), *submission, satisfaction)
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, submissionCreateResponse{
			ID:           submission.ID,
			SubmittedAt:  submission.SubmittedAt,
			Satisfaction: satisfaction,
		})
	}
}

// validateSubmissionRequest rejects payloads that are structurally out of
// bounds before they reach the command service.
func validateSubmissionRequest(req submissionCreateRequest) error {
	if len(req.Ratings) == 0 {
		return errors.New("at least one location rating is required")
	}
	if len(req.Ratings) > common.MaxRatedLocations {
		return errors.New("too many rated locations")
	}
	for _, concern := range req.Concerns {
		if utf8.RuneCountInString(concern.Text) > common.MaxConcernTextRunes {
			return errors.New("concern text is too long")
		}
	}
	if utf8.RuneCountInString(req.Recommendation) > common.MaxConcernTextRunes {
		return errors.New("recommendation text is too long")
	}
	if utf8.RuneCountInString(req.WhyNotRecommend) > common.MaxConcernTextRunes {
		return errors.New("explanation text is too long")
	}
	return nil
}

func buildSubmitCommand(req submissionCreateRequest) application.SubmitSubmissionCommand {
	ratings := make([]application.RatingInput, 0, len(req.Ratings))
	for _, rating := range req.Ratings {
		ratings = append(ratings, application.RatingInput{
			LocationID:         strings.TrimSpace(rating.LocationID),
			Reception:          rating.Reception,
			Professionalism:    rating.Professionalism,
			Understanding:      rating.Understanding,
			PromptnessCare:     rating.PromptnessCare,
			PromptnessFeedback: rating.PromptnessFeedback,
			Overall:            rating.Overall,
		})
	}

	concerns := make([]application.ConcernInput, 0, len(req.Concerns))
	for _, concern := range req.Concerns {
		concerns = append(concerns, application.ConcernInput{
			LocationID: strings.TrimSpace(concern.LocationID),
			Text:       strings.TrimSpace(concern.Text),
		})
	}

	return application.SubmitSubmissionCommand{
		VisitPurpose:    req.VisitPurpose,
		PatientType:     req.PatientType,
		UserType:        req.UserType,
		VisitRecency:    req.VisitRecency,
		WouldRecommend:  req.WouldRecommend,
		Recommendation:  strings.TrimSpace(req.Recommendation),
		WhyNotRecommend: strings.TrimSpace(req.WhyNotRecommend),
		Ratings:         ratings,
		Concerns:        concerns,
	}
}
