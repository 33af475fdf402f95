package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

func TestOverviewAggregates(t *testing.T) {
	subs := &fakeSubmissionRepo{subs: []domain.Submission{
		testSubmission(domain.PurposeGeneralPractice, true, domain.RatingExcellent),
		testSubmission(domain.PurposeGeneralPractice, false, domain.RatingPoor),
	}}
	locs := &fakeLocationRepo{locations: testLocationSet()}
	svc := NewDashboardQueryService(subs, locs, testLogger(), time.UTC)

	overview := svc.Overview(context.Background(), SubmissionFilter{})

	assert.Equal(t, 2, overview.TotalSubmissions)
	assert.Equal(t, 3.0, overview.Satisfaction)
	assert.Equal(t, domain.RatingGood, overview.SatisfactionLabel)
	assert.Equal(t, 50, overview.RecommendRate)
	require.Len(t, overview.Distribution, 5)
	require.Len(t, overview.Locations, len(testLocationSet()))
	require.NotEmpty(t, overview.Priorities)
	assert.Equal(t, "loc-gopd", overview.Priorities[0].Location.ID)
}

// Storage failures degrade to the zero-valued shape; the handler still has a
// well-formed structure to render as "no data available".
func TestOverviewStorageFailureServesZeroShape(t *testing.T) {
	subs := &fakeSubmissionRepo{err: errors.New("mongo down")}
	locs := &fakeLocationRepo{locations: testLocationSet()}
	svc := NewDashboardQueryService(subs, locs, testLogger(), time.UTC)

	overview := svc.Overview(context.Background(), SubmissionFilter{})

	assert.Equal(t, 0, overview.TotalSubmissions)
	assert.Equal(t, 0.0, overview.Satisfaction)
	assert.Equal(t, domain.RatingLabel(""), overview.SatisfactionLabel)
	assert.Equal(t, 0, overview.RecommendRate)
	assert.Len(t, overview.Distribution, 5, "distribution axis survives empty input")
	assert.Empty(t, overview.Priorities)
}

func TestVisitTimeBucketsAlwaysPresent(t *testing.T) {
	subs := &fakeSubmissionRepo{}
	locs := &fakeLocationRepo{}
	svc := NewDashboardQueryService(subs, locs, testLogger(), time.UTC)

	breakdown := svc.VisitTime(context.Background(), SubmissionFilter{})

	assert.Len(t, breakdown.Hourly, 3)
	assert.Len(t, breakdown.Recency, 4)
}

func TestDemographicsFilterByPurpose(t *testing.T) {
	subs := &fakeSubmissionRepo{subs: []domain.Submission{
		testSubmission(domain.PurposeGeneralPractice, true, domain.RatingGood),
		testSubmission(domain.PurposeOccupationalHealth, true, domain.RatingGood),
	}}
	svc := NewDashboardQueryService(subs, &fakeLocationRepo{}, testLogger(), time.UTC)

	breakdown := svc.Demographics(context.Background(), SubmissionFilter{VisitPurpose: domain.PurposeGeneralPractice})

	require.Len(t, breakdown.UserTypes, 1)
	assert.Equal(t, 1, breakdown.UserTypes[0].Count)
}
