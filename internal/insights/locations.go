package insights

import (
	"time"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// CategoryAverages carries the six per-category averages for one location,
// each rounded to one decimal, 0 when the category has no samples.
type CategoryAverages struct {
	Reception          float64
	Professionalism    float64
	Understanding      float64
	PromptnessCare     float64
	PromptnessFeedback float64
	Overall            float64
}

// LocationStats is the aggregate view of one location across a submission set.
type LocationStats struct {
	Location       domain.Location
	VisitCount     int
	RecommendCount int
	RecommendRate  int
	RatingCount    int
	Averages       CategoryAverages
	Satisfaction   float64
	LastVisitAt    time.Time
}

type categoryAccumulator struct {
	sum   int
	count int
}

func (a *categoryAccumulator) add(label domain.RatingLabel) {
	if !label.IsRated() {
		return
	}
	a.sum += label.Value()
	a.count++
}

func (a categoryAccumulator) average() float64 {
	if a.count == 0 {
		return 0
	}
	return round1(float64(a.sum) / float64(a.count))
}

type locationAccumulator struct {
	visits      int
	recommends  int
	ratingCount int
	lastVisit   time.Time
	categories  [6]categoryAccumulator
}

// AggregateLocations folds a submission set into per-location statistics.
// Every known location is reported, including ones nobody visited, which
// come back with zero counts and zero averages. Each rating category is
// accumulated independently: a rating missing Reception but carrying Overall
// contributes to one average and not the other.
func AggregateLocations(subs []domain.Submission, locations []domain.Location) []LocationStats {
	accs := make(map[string]*locationAccumulator, len(locations))
	for _, loc := range locations {
		accs[loc.ID] = &locationAccumulator{}
	}

	for _, sub := range subs {
		for _, id := range sub.LocationIDs {
			acc, ok := accs[id]
			if !ok {
				continue
			}
			acc.visits++
			if sub.WouldRecommend {
				acc.recommends++
			}
			if sub.SubmittedAt.After(acc.lastVisit) {
				acc.lastVisit = sub.SubmittedAt
			}
		}
		for _, rating := range sub.Ratings {
			acc, ok := accs[rating.LocationID]
			if !ok {
				continue
			}
			acc.ratingCount++
			acc.categories[0].add(rating.Reception)
			acc.categories[1].add(rating.Professionalism)
			acc.categories[2].add(rating.Understanding)
			acc.categories[3].add(rating.PromptnessCare)
			acc.categories[4].add(rating.PromptnessFeedback)
			acc.categories[5].add(rating.Overall)
		}
	}

	result := make([]LocationStats, 0, len(locations))
	for _, loc := range locations {
		acc := accs[loc.ID]
		averages := CategoryAverages{
			Reception:          acc.categories[0].average(),
			Professionalism:    acc.categories[1].average(),
			Understanding:      acc.categories[2].average(),
			PromptnessCare:     acc.categories[3].average(),
			PromptnessFeedback: acc.categories[4].average(),
			Overall:            acc.categories[5].average(),
		}
		result = append(result, LocationStats{
			Location:       loc,
			VisitCount:     acc.visits,
			RecommendCount: acc.recommends,
			RecommendRate:  roundPercent(acc.recommends, acc.visits),
			RatingCount:    acc.ratingCount,
			Averages:       averages,
			Satisfaction:   locationSatisfaction(averages),
			LastVisitAt:    acc.lastVisit,
		})
	}
	return result
}

// locationSatisfaction prefers the Overall average. When a location has no
// Overall answers but does have detailed answers, it falls back to the mean
// of the nonzero category averages so the location does not show as zero.
func locationSatisfaction(averages CategoryAverages) float64 {
	if averages.Overall > 0 {
		return averages.Overall
	}
	categories := []float64{
		averages.Reception,
		averages.Professionalism,
		averages.Understanding,
		averages.PromptnessCare,
		averages.PromptnessFeedback,
	}
	sum := 0.0
	count := 0
	for _, avg := range categories {
		if avg > 0 {
			sum += avg
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return round1(sum / float64(count))
}
