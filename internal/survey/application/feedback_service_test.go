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

func TestThemesSplitsCollections(t *testing.T) {
	sub := testSubmission(domain.PurposeGeneralPractice, false, domain.RatingFair)
	sub.Recommendation = "more seating please"
	sub.WhyNotRecommend = "pharmacy queue pharmacy queue"
	sub.Concerns = []domain.Concern{
		{LocationID: "loc-gopd", Text: "waiting room crowded", SubmittedAt: testWhen},
	}
	repo := &fakeSubmissionRepo{subs: []domain.Submission{sub}}
	svc := NewFeedbackQueryService(repo, testLogger())

	themes := svc.Themes(context.Background(), SubmissionFilter{}, 10)

	assert.Equal(t, 1, themes.ConcernCount)
	require.NotEmpty(t, themes.Concerns)
	assert.Equal(t, "crowded", themes.Concerns[0].Word)

	byWord := map[string]int{}
	for _, wc := range themes.WhyNotRecommend {
		byWord[wc.Word] = wc.Count
	}
	assert.Equal(t, 2, byWord["pharmacy"])
	assert.Equal(t, 2, byWord["queue"])
}

func TestConcernsNewestFirst(t *testing.T) {
	older := testSubmission(domain.PurposeGeneralPractice, true, domain.RatingGood)
	older.Concerns = []domain.Concern{{LocationID: "loc-gopd", Text: "old complaint", SubmittedAt: testWhen}}
	newer := testSubmission(domain.PurposeGeneralPractice, true, domain.RatingGood)
	newer.SubmittedAt = testWhen.Add(time.Hour)
	newer.Concerns = []domain.Concern{{LocationID: "loc-ward", Text: "new complaint", SubmittedAt: testWhen.Add(time.Hour)}}

	svc := NewFeedbackQueryService(&fakeSubmissionRepo{subs: []domain.Submission{older, newer}}, testLogger())

	concerns := svc.Concerns(context.Background(), SubmissionFilter{})
	require.Len(t, concerns, 2)
	assert.Equal(t, "new complaint", concerns[0].Text)
}

func TestThemesStorageFailure(t *testing.T) {
	svc := NewFeedbackQueryService(&fakeSubmissionRepo{err: errors.New("down")}, testLogger())

	themes := svc.Themes(context.Background(), SubmissionFilter{}, 10)
	assert.Empty(t, themes.Concerns)
	assert.Empty(t, themes.Recommendations)
	assert.Empty(t, themes.WhyNotRecommend)
	assert.Equal(t, 0, themes.ConcernCount)

	assert.Empty(t, svc.Concerns(context.Background(), SubmissionFilter{}))
}

func TestStatsByTypeFiltersLocations(t *testing.T) {
	repo := &fakeSubmissionRepo{subs: []domain.Submission{
		testSubmission(domain.PurposeGeneralPractice, true, domain.RatingGood),
	}}
	svc := NewLocationQueryService(repo, &fakeLocationRepo{locations: testLocationSet()}, testLogger())

	wards := svc.StatsByType(context.Background(), domain.LocationWard, SubmissionFilter{})
	require.Len(t, wards, 1)
	assert.Equal(t, "loc-ward", wards[0].Location.ID)
	assert.Equal(t, 0, wards[0].VisitCount)

	departments := svc.StatsByType(context.Background(), domain.LocationDepartment, SubmissionFilter{})
	require.Len(t, departments, 1)
	assert.Equal(t, 1, departments[0].VisitCount)
}
