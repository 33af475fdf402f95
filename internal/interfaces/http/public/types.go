package public

import (
	"time"
)

type categoryAveragesPayload struct {
	Reception          float64 `json:"reception"`
	Professionalism    float64 `json:"professionalism"`
	Understanding      float64 `json:"understanding"`
	PromptnessCare     float64 `json:"promptnessCare"`
	PromptnessFeedback float64 `json:"promptnessFeedback"`
	Overall            float64 `json:"overall"`
}

type locationStatsResponse struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Type          string                  `json:"type"`
	TypeLabel     string                  `json:"typeLabel"`
	VisitCount    int                     `json:"visitCount"`
	RecommendRate int                     `json:"recommendRate"`
	RatingCount   int                     `json:"ratingCount"`
	Averages      categoryAveragesPayload `json:"averages"`
	Satisfaction  float64                 `json:"satisfaction"`
	LastVisitAt   *time.Time              `json:"lastVisitAt,omitempty"`
}

type distributionEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type priorityResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	VisitCount   int     `json:"visitCount"`
	Satisfaction float64 `json:"satisfaction"`
	ImpactScore  float64 `json:"impactScore"`
	IsCritical   bool    `json:"isCritical"`
	IsQuickWin   bool    `json:"isQuickWin"`
}

type overviewResponse struct {
	TotalSubmissions  int                     `json:"totalSubmissions"`
	Satisfaction      float64                 `json:"satisfaction"`
	SatisfactionLabel string                  `json:"satisfactionLabel,omitempty"`
	RecommendRate     int                     `json:"recommendRate"`
	Distribution      []distributionEntry     `json:"distribution"`
	Priorities        []priorityResponse      `json:"priorities"`
	Locations         []locationStatsResponse `json:"locations"`
}

type locationListResponse struct {
	Type  string                  `json:"type"`
	Items []locationStatsResponse `json:"items"`
}

type priorityListResponse struct {
	Items []priorityResponse `json:"items"`
}

type groupStatsResponse struct {
	Key           string  `json:"key"`
	Label         string  `json:"label"`
	Count         int     `json:"count"`
	Satisfaction  float64 `json:"satisfaction"`
	RecommendRate int     `json:"recommendRate"`
}

type visitTimeResponse struct {
	Hourly  []groupStatsResponse `json:"hourly"`
	Recency []groupStatsResponse `json:"recency"`
}

type demographicsResponse struct {
	UserTypes    []groupStatsResponse `json:"userTypes"`
	PatientTypes []groupStatsResponse `json:"patientTypes"`
}

type departmentScoreResponse struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name,omitempty"`
	Score        float64 `json:"score"`
	Samples      int     `json:"samples"`
	Insufficient bool    `json:"insufficient"`
}

type cohortResponse struct {
	Key              string                  `json:"key"`
	Label            string                  `json:"label"`
	Count            int                     `json:"count"`
	Satisfaction     float64                 `json:"satisfaction"`
	RecommendRate    int                     `json:"recommendRate"`
	TopDepartment    departmentScoreResponse `json:"topDepartment"`
	BottomDepartment departmentScoreResponse `json:"bottomDepartment"`
	CommonLocations  []locationStatsResponse `json:"commonLocations"`
}

type visitPurposeComparisonResponse struct {
	GeneralPractice    cohortResponse `json:"generalPractice"`
	OccupationalHealth cohortResponse `json:"occupationalHealth"`
}

type patientTypeComparisonResponse struct {
	NewPatients       cohortResponse `json:"newPatients"`
	ReturningPatients cohortResponse `json:"returningPatients"`
}

type wordCountPayload struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type concernResponse struct {
	LocationID  string    `json:"locationId"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type feedbackResponse struct {
	Concerns        []wordCountPayload `json:"concerns"`
	Recommendations []wordCountPayload `json:"recommendations"`
	WhyNotRecommend []wordCountPayload `json:"whyNotRecommend"`
	ConcernCount    int                `json:"concernCount"`
	RecentConcerns  []concernResponse  `json:"recentConcerns"`
}

type ratingRequest struct {
	LocationID         string `json:"locationId"`
	Reception          string `json:"reception,omitempty"`
	Professionalism    string `json:"professionalism,omitempty"`
	Understanding      string `json:"understanding,omitempty"`
	PromptnessCare     string `json:"promptnessCare,omitempty"`
	PromptnessFeedback string `json:"promptnessFeedback,omitempty"`
	Overall            string `json:"overall,omitempty"`
}

type concernRequest struct {
	LocationID string `json:"locationId"`
	Text       string `json:"text"`
}

type submissionCreateRequest struct {
	VisitPurpose    string           `json:"visitPurpose"`
	PatientType     string           `json:"patientType"`
	UserType        string           `json:"userType"`
	VisitRecency    string           `json:"visitRecency"`
	WouldRecommend  bool             `json:"wouldRecommend"`
	Recommendation  string           `json:"recommendation,omitempty"`
	WhyNotRecommend string           `json:"whyNotRecommend,omitempty"`
	Ratings         []ratingRequest  `json:"ratings"`
	Concerns        []concernRequest `json:"concerns,omitempty"`
}

type submissionCreateResponse struct {
	ID           string    `json:"id"`
	SubmittedAt  time.Time `json:"submittedAt"`
	Satisfaction float64   `json:"satisfaction"`
}
