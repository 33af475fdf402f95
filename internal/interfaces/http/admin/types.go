package admin

import (
	"time"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

type adminRatingResponse struct {
	LocationID         string `json:"locationId"`
	Reception          string `json:"reception,omitempty"`
	Professionalism    string `json:"professionalism,omitempty"`
	Understanding      string `json:"understanding,omitempty"`
	PromptnessCare     string `json:"promptnessCare,omitempty"`
	PromptnessFeedback string `json:"promptnessFeedback,omitempty"`
	Overall            string `json:"overall,omitempty"`
}

type adminConcernResponse struct {
	LocationID  string    `json:"locationId"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type adminSubmissionResponse struct {
	ID              string                 `json:"id"`
	SubmittedAt     time.Time              `json:"submittedAt"`
	VisitPurpose    string                 `json:"visitPurpose"`
	PatientType     string                 `json:"patientType"`
	UserType        string                 `json:"userType"`
	VisitRecency    string                 `json:"visitRecency"`
	WouldRecommend  bool                   `json:"wouldRecommend"`
	Recommendation  string                 `json:"recommendation,omitempty"`
	WhyNotRecommend string                 `json:"whyNotRecommend,omitempty"`
	Satisfaction    float64                `json:"satisfaction"`
	Ratings         []adminRatingResponse  `json:"ratings"`
	Concerns        []adminConcernResponse `json:"concerns,omitempty"`
}

type adminSubmissionListResponse struct {
	Items []adminSubmissionResponse `json:"items"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
	Total int                       `json:"total"`
}

func buildAdminSubmissionResponse(sub domain.Submission, satisfaction float64) adminSubmissionResponse {
	ratings := make([]adminRatingResponse, 0, len(sub.Ratings))
	for _, rating := range sub.Ratings {
		ratings = append(ratings, adminRatingResponse{
			LocationID:         rating.LocationID,
			Reception:          string(rating.Reception),
			Professionalism:    string(rating.Professionalism),
			Understanding:      string(rating.Understanding),
			PromptnessCare:     string(rating.PromptnessCare),
			PromptnessFeedback: string(rating.PromptnessFeedback),
			Overall:            string(rating.Overall),
		})
	}

	concerns := make([]adminConcernResponse, 0, len(sub.Concerns))
	for _, concern := range sub.Concerns {
		concerns = append(concerns, adminConcernResponse{
			LocationID:  concern.LocationID,
			Text:        concern.Text,
			SubmittedAt: concern.SubmittedAt,
		})
	}

	return adminSubmissionResponse{
		ID:              sub.ID,
		SubmittedAt:     sub.SubmittedAt,
		VisitPurpose:    string(sub.VisitPurpose),
		PatientType:     string(sub.PatientType),
		UserType:        string(sub.UserType),
		VisitRecency:    string(sub.VisitRecency),
		WouldRecommend:  sub.WouldRecommend,
		Recommendation:  sub.Recommendation,
		WhyNotRecommend: sub.WhyNotRecommend,
		Satisfaction:    satisfaction,
		Ratings:         ratings,
		Concerns:        concerns,
	}
}
