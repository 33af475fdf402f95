// Package insights holds the pure aggregation layer of the reporting
// service. Every function is a synchronous, deterministic transformation
// over submissions already fetched from storage; none of them perform I/O
// or hold shared state, so callers may run them concurrently and cache
// their results freely.
package insights

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// SubmissionSatisfaction reduces one submission's ratings to a single scalar:
// the mean of the Overall answers across every location the respondent rated.
// A submission without ratings yields 0, which is a "no data" sentinel rather
// than a true zero score.
func SubmissionSatisfaction(ratings []domain.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	values := make([]float64, 0, len(ratings))
	for _, r := range ratings {
		values = append(values, float64(r.Overall.Value()))
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

// round1 rounds to one decimal, the precision every dashboard score uses.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundPercent turns a true/total pair into a whole-number percentage.
// A zero total yields 0, never a division by zero.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// meanSatisfaction averages per-submission satisfaction over a group,
// rounded to one decimal. Empty groups yield 0.
func meanSatisfaction(subs []domain.Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	values := make([]float64, 0, len(subs))
	for _, sub := range subs {
		values = append(values, SubmissionSatisfaction(sub.Ratings))
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return round1(mean)
}

// recommendRate is the percentage of would-recommend submissions in a group.
func recommendRate(subs []domain.Submission) int {
	recommends := 0
	for _, sub := range subs {
		if sub.WouldRecommend {
			recommends++
		}
	}
	return roundPercent(recommends, len(subs))
}
