package insights

import (
	"time"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

var testBase = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func testLocations() []domain.Location {
	return []domain.Location{
		{ID: "loc-gopd", Name: "GOPD", Type: domain.LocationDepartment},
		{ID: "loc-lab", Name: "Laboratory", Type: domain.LocationDepartment},
		{ID: "loc-ward-a", Name: "Ward A", Type: domain.LocationWard},
		{ID: "loc-canteen", Name: "Canteen", Type: domain.LocationCanteen},
		{ID: "loc-oh", Name: "Occupational Health Unit", Type: domain.LocationOccupationalHealth},
	}
}

func overallRating(locationID string, overall domain.RatingLabel) domain.Rating {
	return domain.Rating{LocationID: locationID, Overall: overall}
}

func submission(id string, at time.Time, recommend bool, ratings ...domain.Rating) domain.Submission {
	locationIDs := make([]string, 0, len(ratings))
	for _, r := range ratings {
		locationIDs = append(locationIDs, r.LocationID)
	}
	return domain.Submission{
		ID:             id,
		SubmittedAt:    at,
		VisitPurpose:   domain.PurposeGeneralPractice,
		PatientType:    domain.PatientNew,
		UserType:       domain.UserEmployee,
		VisitRecency:   domain.RecencyLessThanMonth,
		WouldRecommend: recommend,
		Ratings:        ratings,
		LocationIDs:    locationIDs,
	}
}
