package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
	"golang.org/x/sync/errgroup"
)

type comparisonQueryService struct {
	submissions SubmissionRepository
	locations   LocationRepository
	logger      *logrus.Logger
}

// NewComparisonQueryService builds the reader behind the cohort comparison
// views (visit purpose and patient type).
func NewComparisonQueryService(submissions SubmissionRepository, locations LocationRepository, logger *logrus.Logger) ComparisonQueryService {
	return &comparisonQueryService{submissions: submissions, locations: locations, logger: logger}
}

func (s *comparisonQueryService) fetch(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, []domain.Location) {
	var (
		subs      []domain.Submission
		locations []domain.Location
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.submissions.Find(gctx, filter)
		if err != nil {
			return err
		}
		subs = found
		return nil
	})
	g.Go(func() error {
		found, err := s.locations.FindAll(gctx)
		if err != nil {
			return err
		}
		locations = found
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("comparison fetch failed, serving empty cohorts")
		return nil, nil
	}
	return subs, locations
}

func (s *comparisonQueryService) VisitPurpose(ctx context.Context, filter SubmissionFilter) (general, occupational insights.CohortStats) {
	subs, locations := s.fetch(ctx, filter)
	return insights.CompareVisitPurpose(subs, locations)
}

func (s *comparisonQueryService) PatientType(ctx context.Context, filter SubmissionFilter) (newPatients, returning insights.CohortStats) {
	subs, locations := s.fetch(ctx, filter)
	return insights.ComparePatientType(subs, locations)
}
