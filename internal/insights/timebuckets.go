package insights

import (
	"time"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// Hour-of-day bucket keys. Morning covers [8,12), Afternoon [12,17),
// Evening everything else.
const (
	BucketMorning   = "morning"
	BucketAfternoon = "afternoon"
	BucketEvening   = "evening"
)

// AggregateByHour buckets submissions by the local hour of their timestamp.
// All three buckets are always present, empty ones included, so the dashboard
// never has to special-case a missing bucket.
func AggregateByHour(subs []domain.Submission, loc *time.Location) []GroupStats {
	if loc == nil {
		loc = time.UTC
	}
	groups := map[string][]domain.Submission{}
	for _, sub := range subs {
		key := hourBucket(sub.SubmittedAt.In(loc).Hour())
		groups[key] = append(groups[key], sub)
	}

	result := make([]GroupStats, 0, 3)
	for _, key := range []string{BucketMorning, BucketAfternoon, BucketEvening} {
		result = append(result, buildGroupStats(key, groups[key]))
	}
	return result
}

func hourBucket(hour int) string {
	switch {
	case hour >= 8 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 17:
		return BucketAfternoon
	default:
		return BucketEvening
	}
}

// AggregateByRecency buckets submissions by their self-reported last-visit
// recency. All four buckets are always present; display names are a
// presentation concern and stay out of this layer.
func AggregateByRecency(subs []domain.Submission) []GroupStats {
	groups := make(map[domain.VisitRecency][]domain.Submission)
	for _, sub := range subs {
		groups[sub.VisitRecency] = append(groups[sub.VisitRecency], sub)
	}

	result := make([]GroupStats, 0, len(domain.VisitRecencies))
	for _, recency := range domain.VisitRecencies {
		result = append(result, buildGroupStats(string(recency), groups[recency]))
	}
	return result
}
