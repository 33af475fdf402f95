package application

import (
	"context"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// SubmissionRepository is the port for reading and writing survey submissions.
type SubmissionRepository interface {
	Find(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, error)
	Insert(ctx context.Context, sub *domain.Submission) error
}

// LocationRepository reads the hospital's ratable units.
type LocationRepository interface {
	FindAll(ctx context.Context) ([]domain.Location, error)
	FindByType(ctx context.Context, locType domain.LocationType) ([]domain.Location, error)
}

// SubmissionFilter narrows a submission fetch. Zero times mean unbounded;
// an empty purpose means all purposes.
type SubmissionFilter struct {
	From         time.Time
	To           time.Time
	VisitPurpose domain.VisitPurpose
}

// Paging controls pagination for raw listings.
type Paging struct {
	Page  int
	Limit int
}

// Overview is the aggregate behind the dashboard's landing tab.
type Overview struct {
	TotalSubmissions  int
	Satisfaction      float64
	SatisfactionLabel domain.RatingLabel
	RecommendRate     int
	Distribution      []insights.LabelCount
	Priorities        []insights.Priority
	Locations         []insights.LocationStats
}

// VisitTimeBreakdown pairs the two time bucketing schemes.
type VisitTimeBreakdown struct {
	Hourly  []insights.GroupStats
	Recency []insights.GroupStats
}

// DemographicBreakdown pairs the two independent demographic groupings.
type DemographicBreakdown struct {
	UserTypes    []insights.GroupStats
	PatientTypes []insights.GroupStats
}

// FeedbackThemes is the free-text analysis behind the feedback tab.
type FeedbackThemes struct {
	Concerns        []insights.WordCount
	Recommendations []insights.WordCount
	WhyNotRecommend []insights.WordCount
	ConcernCount    int
}

// DashboardQueryService serves the overview and its sibling breakdowns.
// Implementations must absorb storage failures: they log and return the
// zero-valued shape so the dashboard renders a "no data" state instead of
// failing.
type DashboardQueryService interface {
	Overview(ctx context.Context, filter SubmissionFilter) Overview
	VisitTime(ctx context.Context, filter SubmissionFilter) VisitTimeBreakdown
	Demographics(ctx context.Context, filter SubmissionFilter) DemographicBreakdown
	Priorities(ctx context.Context, filter SubmissionFilter) []insights.Priority
}

// LocationQueryService serves the per-location-type dashboard tabs.
type LocationQueryService interface {
	StatsByType(ctx context.Context, locType domain.LocationType, filter SubmissionFilter) []insights.LocationStats
}

// ComparisonQueryService serves the cohort comparison views.
type ComparisonQueryService interface {
	VisitPurpose(ctx context.Context, filter SubmissionFilter) (general, occupational insights.CohortStats)
	PatientType(ctx context.Context, filter SubmissionFilter) (newPatients, returning insights.CohortStats)
}

// FeedbackQueryService serves the free-text themes view.
type FeedbackQueryService interface {
	Themes(ctx context.Context, filter SubmissionFilter, limit int) FeedbackThemes
	Concerns(ctx context.Context, filter SubmissionFilter) []domain.Concern
}

// SubmissionQueryService serves the admin raw listing.
type SubmissionQueryService interface {
	List(ctx context.Context, filter SubmissionFilter, paging Paging) ([]domain.Submission, int, error)
}

// SubmissionCommandService handles survey intake.
type SubmissionCommandService interface {
	Submit(ctx context.Context, cmd SubmitSubmissionCommand) (*domain.Submission, error)
}

// RatingInput carries one location's raw ordinal answers.
type RatingInput struct {
	LocationID         string
	Reception          string
	Professionalism    string
	Understanding      string
	PromptnessCare     string
	PromptnessFeedback string
	Overall            string
}

// ConcernInput carries one free-text complaint.
type ConcernInput struct {
	LocationID string
	Text       string
}

// SubmitSubmissionCommand captures a survey response as received at intake.
type SubmitSubmissionCommand struct {
	VisitPurpose    string
	PatientType     string
	UserType        string
	VisitRecency    string
	WouldRecommend  bool
	Recommendation  string
	WhyNotRecommend string
	Ratings         []RatingInput
	Concerns        []ConcernInput
}
