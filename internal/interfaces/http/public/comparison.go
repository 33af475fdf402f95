package public

import (
	"context"
	"net/http"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// visitPurposeComparisonHandler serves the General Practice versus
// Occupational Health cohort comparison. The purpose query parameter is
// ignored here since the endpoint always shows both cohorts.
func (h *Handler) visitPurposeComparisonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter, err := h.parseSubmissionFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		filter.VisitPurpose = ""

		general, occupational := h.comparisons.VisitPurpose(ctx, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, visitPurposeComparisonResponse{
			GeneralPractice:    buildCohortResponse(general, common.DisplayVisitPurpose(domain.PurposeGeneralPractice)),
			OccupationalHealth: buildCohortResponse(occupational, common.DisplayVisitPurpose(domain.PurposeOccupationalHealth)),
		})
	}
}

// patientTypeComparisonHandler serves the first-visit versus returning
// patient comparison.
func (h *Handler) patientTypeComparisonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		filter, err := h.parseSubmissionFilter(r.URL.Query())
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		newPatients, returning := h.comparisons.PatientType(ctx, filter)

		common.WriteJSON(h.logger, w, http.StatusOK, patientTypeComparisonResponse{
			NewPatients:       buildCohortResponse(newPatients, common.DisplayPatientType(domain.PatientNew)),
			ReturningPatients: buildCohortResponse(returning, common.DisplayPatientType(domain.PatientReturning)),
		})
	}
}
