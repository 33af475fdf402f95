package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

func TestSubmissionSatisfactionEmptyRatings(t *testing.T) {
	assert.Equal(t, 0.0, SubmissionSatisfaction(nil))
	assert.Equal(t, 0.0, SubmissionSatisfaction([]domain.Rating{}))
}

func TestSubmissionSatisfactionMeanOfOveralls(t *testing.T) {
	ratings := []domain.Rating{
		overallRating("loc-gopd", domain.RatingExcellent),
		overallRating("loc-lab", domain.RatingPoor),
	}
	assert.InDelta(t, 3.0, SubmissionSatisfaction(ratings), 1e-9)
}

// A rating whose Overall category is absent still sits in the denominator;
// the per-submission scalar divides by the number of ratings, not the number
// of answered Overall categories.
func TestSubmissionSatisfactionAbsentOverallCountsInDenominator(t *testing.T) {
	ratings := []domain.Rating{
		overallRating("loc-gopd", domain.RatingGood),
		{LocationID: "loc-lab", Reception: domain.RatingGood},
	}
	assert.InDelta(t, 1.5, SubmissionSatisfaction(ratings), 1e-9)
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 0, roundPercent(3, 0))
	assert.Equal(t, 50, roundPercent(1, 2))
	assert.Equal(t, 67, roundPercent(2, 3))
	assert.Equal(t, 33, roundPercent(1, 3))
	assert.Equal(t, 100, roundPercent(5, 5))
}

func TestMeanSatisfactionRounded(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-gopd", domain.RatingExcellent)),
		submission("s2", testBase, true, overallRating("loc-gopd", domain.RatingVeryGood)),
		submission("s3", testBase, false, overallRating("loc-gopd", domain.RatingGood)),
	}
	assert.Equal(t, 4.0, meanSatisfaction(subs))
	assert.Equal(t, 0.0, meanSatisfaction(nil))
}
