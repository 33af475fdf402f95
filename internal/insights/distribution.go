package insights

import "github.com/careloop/patient-survey-services/api/internal/survey/domain"

// LabelCount is one bar of the overall rating distribution chart.
type LabelCount struct {
	Label domain.RatingLabel
	Count int
}

// OverallDistribution counts Overall answers per label across every rating
// in the set. All five labels are always present, best to worst, so charts
// keep a stable axis.
func OverallDistribution(subs []domain.Submission) []LabelCount {
	counts := make(map[domain.RatingLabel]int, len(domain.RatingLabels))
	for _, sub := range subs {
		for _, rating := range sub.Ratings {
			if rating.Overall.IsRated() {
				counts[rating.Overall]++
			}
		}
	}

	result := make([]LabelCount, 0, len(domain.RatingLabels))
	for _, label := range domain.RatingLabels {
		result = append(result, LabelCount{Label: label, Count: counts[label]})
	}
	return result
}

// OverallSatisfaction averages per-submission satisfaction across the whole
// set, rounded to one decimal.
func OverallSatisfaction(subs []domain.Submission) float64 {
	return meanSatisfaction(subs)
}

// OverallRecommendRate is the would-recommend percentage across the set.
func OverallRecommendRate(subs []domain.Submission) int {
	return recommendRate(subs)
}
