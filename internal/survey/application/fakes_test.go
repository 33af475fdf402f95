package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

type fakeSubmissionRepo struct {
	subs     []domain.Submission
	err      error
	finds    int
	inserted []domain.Submission
}

func (f *fakeSubmissionRepo) Find(_ context.Context, filter SubmissionFilter) ([]domain.Submission, error) {
	f.finds++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]domain.Submission, 0, len(f.subs))
	for _, sub := range f.subs {
		if filter.VisitPurpose != "" && sub.VisitPurpose != filter.VisitPurpose {
			continue
		}
		if !filter.From.IsZero() && sub.SubmittedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && sub.SubmittedAt.After(filter.To) {
			continue
		}
		result = append(result, sub)
	}
	return result, nil
}

func (f *fakeSubmissionRepo) Insert(_ context.Context, sub *domain.Submission) error {
	if f.err != nil {
		return f.err
	}
	sub.ID = "generated-id"
	f.inserted = append(f.inserted, *sub)
	return nil
}

type fakeLocationRepo struct {
	locations []domain.Location
	err       error
}

func (f *fakeLocationRepo) FindAll(_ context.Context) ([]domain.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func (f *fakeLocationRepo) FindByType(_ context.Context, locType domain.LocationType) ([]domain.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]domain.Location, 0)
	for _, loc := range f.locations {
		if loc.Type == locType {
			result = append(result, loc)
		}
	}
	return result, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(nopWriter{})
	return logger
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

var testWhen = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func testLocationSet() []domain.Location {
	return []domain.Location{
		{ID: "loc-gopd", Name: "GOPD", Type: domain.LocationDepartment},
		{ID: "loc-ward", Name: "Ward A", Type: domain.LocationWard},
		{ID: "loc-oh", Name: "Occupational Health Unit", Type: domain.LocationOccupationalHealth},
	}
}

func testSubmission(purpose domain.VisitPurpose, recommend bool, overall domain.RatingLabel) domain.Submission {
	return domain.Submission{
		ID:             "sub",
		SubmittedAt:    testWhen,
		VisitPurpose:   purpose,
		PatientType:    domain.PatientNew,
		UserType:       domain.UserEmployee,
		VisitRecency:   domain.RecencyLessThanMonth,
		WouldRecommend: recommend,
		Ratings:        []domain.Rating{{LocationID: "loc-gopd", Overall: overall}},
		LocationIDs:    []string{"loc-gopd"},
	}
}
