package application

import (
	"context"
	"fmt"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/cache"
	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// The caching decorators below wrap the query services so the pure
// aggregators stay cache-agnostic. Keys are canonical renderings of the
// query parameters; entries fall out by TTL alone.

func filterKey(filter SubmissionFilter) string {
	from, to := "", ""
	if !filter.From.IsZero() {
		from = filter.From.UTC().Format(time.RFC3339)
	}
	if !filter.To.IsZero() {
		to = filter.To.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s|%s|%s", from, to, filter.VisitPurpose)
}

func memo[T any](store *cache.TTL, key string, compute func() T) T {
	if cached, ok := store.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value
		}
	}
	value := compute()
	store.Set(key, value)
	return value
}

type cachedDashboardService struct {
	inner DashboardQueryService
	store *cache.TTL
}

// NewCachedDashboardService layers a TTL cache over a DashboardQueryService.
func NewCachedDashboardService(inner DashboardQueryService, store *cache.TTL) DashboardQueryService {
	return &cachedDashboardService{inner: inner, store: store}
}

func (s *cachedDashboardService) Overview(ctx context.Context, filter SubmissionFilter) Overview {
	return memo(s.store, "overview|"+filterKey(filter), func() Overview {
		return s.inner.Overview(ctx, filter)
	})
}

func (s *cachedDashboardService) VisitTime(ctx context.Context, filter SubmissionFilter) VisitTimeBreakdown {
	return memo(s.store, "visit-time|"+filterKey(filter), func() VisitTimeBreakdown {
		return s.inner.VisitTime(ctx, filter)
	})
}

func (s *cachedDashboardService) Demographics(ctx context.Context, filter SubmissionFilter) DemographicBreakdown {
	return memo(s.store, "demographics|"+filterKey(filter), func() DemographicBreakdown {
		return s.inner.Demographics(ctx, filter)
	})
}

func (s *cachedDashboardService) Priorities(ctx context.Context, filter SubmissionFilter) []insights.Priority {
	return memo(s.store, "priorities|"+filterKey(filter), func() []insights.Priority {
		return s.inner.Priorities(ctx, filter)
	})
}

type cachedLocationService struct {
	inner LocationQueryService
	store *cache.TTL
}

// NewCachedLocationService layers a TTL cache over a LocationQueryService.
func NewCachedLocationService(inner LocationQueryService, store *cache.TTL) LocationQueryService {
	return &cachedLocationService{inner: inner, store: store}
}

func (s *cachedLocationService) StatsByType(ctx context.Context, locType domain.LocationType, filter SubmissionFilter) []insights.LocationStats {
	key := fmt.Sprintf("locations|%s|%s", locType, filterKey(filter))
	return memo(s.store, key, func() []insights.LocationStats {
		return s.inner.StatsByType(ctx, locType, filter)
	})
}

type cachedComparisonService struct {
	inner ComparisonQueryService
	store *cache.TTL
}

// NewCachedComparisonService layers a TTL cache over a ComparisonQueryService.
func NewCachedComparisonService(inner ComparisonQueryService, store *cache.TTL) ComparisonQueryService {
	return &cachedComparisonService{inner: inner, store: store}
}

type cohortPair struct {
	First  insights.CohortStats
	Second insights.CohortStats
}

func (s *cachedComparisonService) VisitPurpose(ctx context.Context, filter SubmissionFilter) (general, occupational insights.CohortStats) {
	pair := memo(s.store, "comparison-purpose|"+filterKey(filter), func() cohortPair {
		first, second := s.inner.VisitPurpose(ctx, filter)
		return cohortPair{First: first, Second: second}
	})
	return pair.First, pair.Second
}

func (s *cachedComparisonService) PatientType(ctx context.Context, filter SubmissionFilter) (newPatients, returning insights.CohortStats) {
	pair := memo(s.store, "comparison-patient|"+filterKey(filter), func() cohortPair {
		first, second := s.inner.PatientType(ctx, filter)
		return cohortPair{First: first, Second: second}
	})
	return pair.First, pair.Second
}

type cachedFeedbackService struct {
	inner FeedbackQueryService
	store *cache.TTL
}

// NewCachedFeedbackService layers a TTL cache over a FeedbackQueryService.
func NewCachedFeedbackService(inner FeedbackQueryService, store *cache.TTL) FeedbackQueryService {
	return &cachedFeedbackService{inner: inner, store: store}
}

func (s *cachedFeedbackService) Themes(ctx context.Context, filter SubmissionFilter, limit int) FeedbackThemes {
	key := fmt.Sprintf("themes|%d|%s", limit, filterKey(filter))
	return memo(s.store, key, func() FeedbackThemes {
		return s.inner.Themes(ctx, filter, limit)
	})
}

func (s *cachedFeedbackService) Concerns(ctx context.Context, filter SubmissionFilter) []domain.Concern {
	return memo(s.store, "concerns|"+filterKey(filter), func() []domain.Concern {
		return s.inner.Concerns(ctx, filter)
	})
}
