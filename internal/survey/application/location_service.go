package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

type locationQueryService struct {
	submissions SubmissionRepository
	locations   LocationRepository
	logger      *logrus.Logger
}

// NewLocationQueryService builds the reader behind the departments, wards,
// canteen and occupational-health tabs.
func NewLocationQueryService(submissions SubmissionRepository, locations LocationRepository, logger *logrus.Logger) LocationQueryService {
	return &locationQueryService{submissions: submissions, locations: locations, logger: logger}
}

func (s *locationQueryService) StatsByType(ctx context.Context, locType domain.LocationType, filter SubmissionFilter) []insights.LocationStats {
	locations, err := s.locations.FindByType(ctx, locType)
	if err != nil {
		s.logger.WithError(err).Error("location fetch failed, serving empty stats")
		return []insights.LocationStats{}
	}

	subs, err := s.submissions.Find(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("submission fetch failed, serving zeroed location stats")
		subs = nil
	}
	return insights.AggregateLocations(subs, locations)
}
