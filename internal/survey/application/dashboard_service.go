package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

type dashboardQueryService struct {
	submissions SubmissionRepository
	locations   LocationRepository
	logger      *logrus.Logger
	timezone    *time.Location
}

// NewDashboardQueryService builds the reader behind the overview, visit-time,
// demographics and priorities views.
func NewDashboardQueryService(submissions SubmissionRepository, locations LocationRepository, logger *logrus.Logger, timezone *time.Location) DashboardQueryService {
	if timezone == nil {
		timezone = time.UTC
	}
	return &dashboardQueryService{
		submissions: submissions,
		locations:   locations,
		logger:      logger,
		timezone:    timezone,
	}
}

// fetch loads submissions and locations concurrently; the two reads are
// independent round-trips. On failure it logs and returns empty slices so
// every aggregate downstream degrades to its zero-valued shape.
func (s *dashboardQueryService) fetch(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, []domain.Location) {
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
		s.logger.WithError(err).Error("dashboard fetch failed, serving empty aggregates")
		return nil, nil
	}
	return subs, locations
}

func (s *dashboardQueryService) Overview(ctx context.Context, filter SubmissionFilter) Overview {
	subs, locations := s.fetch(ctx, filter)

	locationStats := insights.AggregateLocations(subs, locations)
	overview := Overview{
		TotalSubmissions: len(subs),
		Satisfaction:     insights.OverallSatisfaction(subs),
		RecommendRate:    insights.OverallRecommendRate(subs),
		Distribution:     insights.OverallDistribution(subs),
		Priorities:       insights.RankImprovementPriorities(locationStats),
		Locations:        locationStats,
	}
	if overview.TotalSubmissions > 0 {
		overview.SatisfactionLabel = domain.LabelForScore(overview.Satisfaction)
	}
	return overview
}

func (s *dashboardQueryService) VisitTime(ctx context.Context, filter SubmissionFilter) VisitTimeBreakdown {
	subs, err := s.submissions.Find(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("visit-time fetch failed, serving empty aggregates")
		subs = nil
	}
	return VisitTimeBreakdown{
		Hourly:  insights.AggregateByHour(subs, s.timezone),
		Recency: insights.AggregateByRecency(subs),
	}
}

func (s *dashboardQueryService) Demographics(ctx context.Context, filter SubmissionFilter) DemographicBreakdown {
	subs, err := s.submissions.Find(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("demographics fetch failed, serving empty aggregates")
		subs = nil
	}
	return DemographicBreakdown{
		UserTypes:    insights.AggregateByUserType(subs),
		PatientTypes: insights.AggregateByPatientType(subs),
	}
}

func (s *dashboardQueryService) Priorities(ctx context.Context, filter SubmissionFilter) []insights.Priority {
	subs, locations := s.fetch(ctx, filter)
	return insights.RankImprovementPriorities(insights.AggregateLocations(subs, locations))
}
