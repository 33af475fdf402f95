package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

func statsFor(t *testing.T, all []LocationStats, locationID string) LocationStats {
	t.Helper()
	for _, ls := range all {
		if ls.Location.ID == locationID {
			return ls
		}
	}
	require.Failf(t, "location missing from aggregate", "id=%s", locationID)
	return LocationStats{}
}

func TestAggregateLocationsZeroVisitsReportsZeros(t *testing.T) {
	result := AggregateLocations(nil, testLocations())
	require.Len(t, result, len(testLocations()))

	for _, ls := range result {
		assert.Equal(t, 0, ls.VisitCount)
		assert.Equal(t, 0, ls.RecommendRate)
		assert.Equal(t, 0.0, ls.Satisfaction)
		assert.Equal(t, CategoryAverages{}, ls.Averages)
	}
}

func TestAggregateLocationsOverallAverage(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-ward-a", domain.RatingExcellent)),
		submission("s2", testBase.Add(time.Hour), false, overallRating("loc-ward-a", domain.RatingPoor)),
	}

	ward := statsFor(t, AggregateLocations(subs, testLocations()), "loc-ward-a")
	assert.Equal(t, 2, ward.VisitCount)
	assert.Equal(t, 1, ward.RecommendCount)
	assert.Equal(t, 50, ward.RecommendRate)
	assert.Equal(t, 3.0, ward.Averages.Overall)
	assert.Equal(t, 3.0, ward.Satisfaction)
	assert.Equal(t, domain.RatingGood, domain.LabelForScore(ward.Satisfaction))
	assert.Equal(t, testBase.Add(time.Hour), ward.LastVisitAt)
}

// Categories accumulate independently: a rating missing Reception but
// carrying Overall contributes to one average and not the other.
func TestAggregateLocationsIndependentCategories(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, domain.Rating{
			LocationID: "loc-gopd",
			Reception:  domain.RatingExcellent,
			Overall:    domain.RatingGood,
		}),
		submission("s2", testBase, true, domain.Rating{
			LocationID: "loc-gopd",
			Overall:    domain.RatingVeryGood,
		}),
	}

	gopd := statsFor(t, AggregateLocations(subs, testLocations()), "loc-gopd")
	assert.Equal(t, 5.0, gopd.Averages.Reception, "reception avg from single sample")
	assert.Equal(t, 3.5, gopd.Averages.Overall)
	assert.Equal(t, 2, gopd.RatingCount)
}

func TestAggregateLocationsFallbackSatisfaction(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, domain.Rating{
			LocationID:      "loc-canteen",
			Reception:       domain.RatingVeryGood,
			Professionalism: domain.RatingGood,
		}),
	}

	canteen := statsFor(t, AggregateLocations(subs, testLocations()), "loc-canteen")
	assert.Equal(t, 0.0, canteen.Averages.Overall)
	assert.Equal(t, 3.5, canteen.Satisfaction, "mean of nonzero category averages")
}

func TestAggregateLocationsIgnoresUnknownLocation(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-unknown", domain.RatingGood)),
	}

	result := AggregateLocations(subs, testLocations())
	require.Len(t, result, len(testLocations()))
	for _, ls := range result {
		assert.Equal(t, 0, ls.VisitCount)
	}
}

func TestAggregateLocationsDeterministic(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-gopd", domain.RatingGood)),
		submission("s2", testBase, false, overallRating("loc-lab", domain.RatingFair)),
		submission("s3", testBase, true, overallRating("loc-gopd", domain.RatingExcellent)),
	}

	first := AggregateLocations(subs, testLocations())
	second := AggregateLocations(subs, testLocations())
	assert.Equal(t, first, second)
}
