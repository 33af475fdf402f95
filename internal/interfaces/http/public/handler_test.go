package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/application"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

type stubDashboards struct {
	overview     application.Overview
	visitTime    application.VisitTimeBreakdown
	demographics application.DemographicBreakdown
	priorities   []insights.Priority
	lastFilter   application.SubmissionFilter
}

func (s *stubDashboards) Overview(_ context.Context, f application.SubmissionFilter) application.Overview {
	s.lastFilter = f
	return s.overview
}

func (s *stubDashboards) VisitTime(_ context.Context, f application.SubmissionFilter) application.VisitTimeBreakdown {
	s.lastFilter = f
	return s.visitTime
}

func (s *stubDashboards) Demographics(_ context.Context, f application.SubmissionFilter) application.DemographicBreakdown {
	s.lastFilter = f
	return s.demographics
}

func (s *stubDashboards) Priorities(_ context.Context, f application.SubmissionFilter) []insights.Priority {
	s.lastFilter = f
	return s.priorities
}

type stubLocations struct {
	stats    []insights.LocationStats
	lastType domain.LocationType
}

func (s *stubLocations) StatsByType(_ context.Context, locType domain.LocationType, _ application.SubmissionFilter) []insights.LocationStats {
	s.lastType = locType
	return s.stats
}

type stubComparisons struct {
	first  insights.CohortStats
	second insights.CohortStats
}

func (s *stubComparisons) VisitPurpose(_ context.Context, _ application.SubmissionFilter) (insights.CohortStats, insights.CohortStats) {
	return s.first, s.second
}

func (s *stubComparisons) PatientType(_ context.Context, _ application.SubmissionFilter) (insights.CohortStats, insights.CohortStats) {
	return s.first, s.second
}

type stubFeedback struct {
	themes   application.FeedbackThemes
	concerns []domain.Concern
}

func (s *stubFeedback) Themes(_ context.Context, _ application.SubmissionFilter, _ int) application.FeedbackThemes {
	return s.themes
}

func (s *stubFeedback) Concerns(_ context.Context, _ application.SubmissionFilter) []domain.Concern {
	return s.concerns
}

type stubSubmissions struct {
	result  *domain.Submission
	err     error
	lastCmd application.SubmitSubmissionCommand
}

func (s *stubSubmissions) Submit(_ context.Context, cmd application.SubmitSubmissionCommand) (*domain.Submission, error) {
	s.lastCmd = cmd
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type handlerStubs struct {
	dashboards  *stubDashboards
	locations   *stubLocations
	comparisons *stubComparisons
	feedback    *stubFeedback
	submissions *stubSubmissions
}

func newTestRouter(t *testing.T) (chi.Router, *handlerStubs) {
	t.Helper()
	stubs := &handlerStubs{
		dashboards:  &stubDashboards{},
		locations:   &stubLocations{},
		comparisons: &stubComparisons{},
		feedback:    &stubFeedback{},
		submissions: &stubSubmissions{},
	}
	handler := NewHandler(Config{
		Logger:      quietLogger(),
		Dashboards:  stubs.dashboards,
		Locations:   stubs.locations,
		Comparisons: stubs.comparisons,
		Feedback:    stubs.feedback,
		Submissions: stubs.submissions,
		Location:    time.UTC,
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router, stubs
}

func TestOverviewEndpoint(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.dashboards.overview = application.Overview{
		TotalSubmissions:  12,
		Satisfaction:      4.1,
		SatisfactionLabel: domain.RatingVeryGood,
		RecommendRate:     83,
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/overview?from=2026-01-01&to=2026-01-31", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body overviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.TotalSubmissions)
	assert.InDelta(t, 4.1, body.Satisfaction, 1e-9)
	assert.Equal(t, "Very Good", body.SatisfactionLabel)

	// The "to" bound must cover the whole requested day.
	assert.Equal(t, 31, stubs.dashboards.lastFilter.To.Day())
	assert.Equal(t, 23, stubs.dashboards.lastFilter.To.Hour())
}

func TestOverviewRejectsBadDate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/overview?from=January", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationEndpointRequiresKnownType(t *testing.T) {
	router, stubs := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/locations", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/locations?type=ward", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.LocationWard, stubs.locations.lastType)
}

func TestVisitTimeAttachesRecencyLabels(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.dashboards.visitTime = application.VisitTimeBreakdown{
		Hourly: []insights.GroupStats{{Key: "Morning", Count: 4}},
		Recency: []insights.GroupStats{
			{Key: string(domain.RecencyOneTwoMonths), Count: 2},
		},
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/visit-time", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body visitTimeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Hourly, 1)
	assert.Equal(t, "Morning", body.Hourly[0].Label)
	require.Len(t, body.Recency, 1)
	assert.Equal(t, "1-2 months ago", body.Recency[0].Label)
}

func TestComparisonEndpointLabelsCohorts(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.comparisons.first = insights.CohortStats{Key: string(domain.PurposeGeneralPractice), Count: 6}
	stubs.comparisons.second = insights.CohortStats{Key: string(domain.PurposeOccupationalHealth), Count: 4}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/comparison/visit-purpose", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body visitPurposeComparisonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "General practice", body.GeneralPractice.Label)
	assert.Equal(t, 6, body.GeneralPractice.Count)
	assert.Equal(t, "Occupational health", body.OccupationalHealth.Label)
}

func TestFeedbackEndpointCapsRecentConcerns(t *testing.T) {
	router, stubs := newTestRouter(t)
	for i := 0; i < maxRecentConcerns+5; i++ {
		stubs.feedback.concerns = append(stubs.feedback.concerns, domain.Concern{Text: "too slow"})
	}
	stubs.feedback.themes = application.FeedbackThemes{
		Concerns:     []insights.WordCount{{Word: "slow", Count: 25}},
		ConcernCount: 25,
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/feedback", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body feedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.RecentConcerns, maxRecentConcerns)
	require.Len(t, body.Concerns, 1)
	assert.Equal(t, "slow", body.Concerns[0].Word)
}

func validSubmissionBody() string {
	return `{
		"visitPurpose": "general-practice",
		"patientType": "new",
		"userType": "employee",
		"visitRecency": "less-than-month",
		"wouldRecommend": true,
		"ratings": [{"locationId": "abc123", "overall": "Excellent"}]
	}`
}

func TestSubmissionCreate(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.submissions.result = &domain.Submission{
		ID:          "generated-id",
		SubmittedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		Ratings: []domain.Rating{
			{LocationID: "abc123", Overall: domain.RatingExcellent},
		},
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(validSubmissionBody())))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body submissionCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "generated-id", body.ID)
	assert.InDelta(t, 5.0, body.Satisfaction, 1e-9)

	assert.Equal(t, "general-practice", stubs.submissions.lastCmd.VisitPurpose)
	require.Len(t, stubs.submissions.lastCmd.Ratings, 1)
	assert.Equal(t, "abc123", stubs.submissions.lastCmd.Ratings[0].LocationID)
}

func TestSubmissionCreateRejectsInvalidPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed JSON", "{"},
		{"unknown field", `{"visitPurpose": "gp", "extra": true}`},
		{"no ratings", `{"visitPurpose": "general-practice", "patientType": "new", "userType": "employee", "visitRecency": "less-than-month", "ratings": []}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newTestRouter(t)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubmissionCreateMapsValidationErrors(t *testing.T) {
	router, stubs := newTestRouter(t)
	stubs.submissions.err = application.ErrInvalidSubmission

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submissions", strings.NewReader(validSubmissionBody())))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
