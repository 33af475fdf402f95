package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

func TestCompareVisitPurposeEndToEnd(t *testing.T) {
	// 10 submissions, 6 General Practice / 4 Occupational Health, each with a
	// single "Good" overall rating and a positive recommendation.
	subs := make([]domain.Submission, 0, 10)
	for i := 0; i < 6; i++ {
		subs = append(subs, submission("gp", testBase, true, overallRating("loc-gopd", domain.RatingGood)))
	}
	for i := 0; i < 4; i++ {
		sub := submission("oh", testBase, true, overallRating("loc-lab", domain.RatingGood))
		sub.VisitPurpose = domain.PurposeOccupationalHealth
		subs = append(subs, sub)
	}

	general, occupational := CompareVisitPurpose(subs, testLocations())

	assert.Equal(t, 6, general.Count)
	assert.Equal(t, 3.0, general.Satisfaction)
	assert.Equal(t, 100, general.RecommendRate)

	assert.Equal(t, 4, occupational.Count)
	assert.Equal(t, 3.0, occupational.Satisfaction)
	assert.Equal(t, 100, occupational.RecommendRate)
}

func TestCohortTopBottomDepartments(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-gopd", domain.RatingExcellent)),
		submission("s2", testBase, true, overallRating("loc-gopd", domain.RatingExcellent)),
		submission("s3", testBase, true, overallRating("loc-lab", domain.RatingPoor)),
		submission("s4", testBase, false, overallRating("loc-lab", domain.RatingFair)),
	}

	general, _ := CompareVisitPurpose(subs, testLocations())

	assert.Equal(t, "loc-gopd", general.TopDepartment.Location.ID)
	assert.Equal(t, 5.0, general.TopDepartment.Score)
	assert.False(t, general.TopDepartment.Insufficient)

	assert.Equal(t, "loc-lab", general.BottomDepartment.Location.ID)
	assert.Equal(t, 1.5, general.BottomDepartment.Score)
}

// A location with a single rating stays out of top/bottom selection but
// still appears in the cohort's common locations.
func TestCohortMinimumSampleThreshold(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-gopd", domain.RatingExcellent)),
		submission("s2", testBase, true, overallRating("loc-gopd", domain.RatingGood)),
		submission("s3", testBase, true, overallRating("loc-canteen", domain.RatingPoor)),
	}

	general, _ := CompareVisitPurpose(subs, testLocations())

	assert.Equal(t, "loc-gopd", general.TopDepartment.Location.ID)
	assert.Equal(t, "loc-gopd", general.BottomDepartment.Location.ID, "single-sample canteen excluded")

	ids := make([]string, 0, len(general.CommonLocations))
	for _, ls := range general.CommonLocations {
		ids = append(ids, ls.Location.ID)
	}
	assert.Contains(t, ids, "loc-canteen")
}

func TestCohortInsufficientDataFallback(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-ward-a", domain.RatingGood)),
	}

	general, _ := CompareVisitPurpose(subs, testLocations())

	assert.True(t, general.TopDepartment.Insufficient)
	assert.True(t, general.BottomDepartment.Insufficient)
	assert.Equal(t, "loc-ward-a", general.TopDepartment.Location.ID, "falls back to most visited")
	assert.Equal(t, 0.0, general.TopDepartment.Score)
}

func TestOccupationalCohortExcludesOwnUnit(t *testing.T) {
	subs := make([]domain.Submission, 0, 4)
	for i := 0; i < 2; i++ {
		sub := submission("oh", testBase, true,
			overallRating("loc-oh", domain.RatingExcellent),
			overallRating("loc-lab", domain.RatingGood),
		)
		sub.VisitPurpose = domain.PurposeOccupationalHealth
		subs = append(subs, sub)
	}

	_, occupational := CompareVisitPurpose(subs, testLocations())

	for _, ls := range occupational.CommonLocations {
		assert.NotEqual(t, domain.LocationOccupationalHealth, ls.Location.Type)
	}
	assert.Equal(t, "loc-lab", occupational.TopDepartment.Location.ID)
	assert.Equal(t, "loc-lab", occupational.BottomDepartment.Location.ID)
}

func TestCommonLocationsOrdering(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-gopd", domain.RatingGood)),
		submission("s2", testBase.Add(time.Hour), true, overallRating("loc-gopd", domain.RatingGood)),
		submission("s3", testBase.Add(2*time.Hour), true, overallRating("loc-lab", domain.RatingGood)),
		submission("s4", testBase.Add(3*time.Hour), true, overallRating("loc-canteen", domain.RatingGood)),
	}

	general, _ := CompareVisitPurpose(subs, testLocations())
	require.Len(t, general.CommonLocations, 3)

	assert.Equal(t, "loc-gopd", general.CommonLocations[0].Location.ID, "highest visit count first")
	// Tied visit counts fall back to the most recent visit.
	assert.Equal(t, "loc-canteen", general.CommonLocations[1].Location.ID)
	assert.Equal(t, "loc-lab", general.CommonLocations[2].Location.ID)
}

func TestComparePatientType(t *testing.T) {
	subs := []domain.Submission{
		submission("s1", testBase, true, overallRating("loc-gopd", domain.RatingExcellent)),
		submission("s2", testBase, false, overallRating("loc-gopd", domain.RatingPoor)),
	}
	subs[1].PatientType = domain.PatientReturning

	newPatients, returning := ComparePatientType(subs, testLocations())

	assert.Equal(t, 1, newPatients.Count)
	assert.Equal(t, 5.0, newPatients.Satisfaction)
	assert.Equal(t, 100, newPatients.RecommendRate)

	assert.Equal(t, 1, returning.Count)
	assert.Equal(t, 1.0, returning.Satisfaction)
	assert.Equal(t, 0, returning.RecommendRate)
}

func TestSelectTopBottomEmptyInput(t *testing.T) {
	top, bottom := SelectTopBottom(nil, MinDepartmentSamples)
	assert.True(t, top.Insufficient)
	assert.True(t, bottom.Insufficient)
	assert.Equal(t, domain.Location{}, top.Location)
}
