package insights

import (
	"math"
	"sort"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// Priority ranks a location for improvement effort. The impact score rewards
// low satisfaction weighted by visit volume, sub-linearly in volume so a
// single extreme location cannot dominate purely by count.
type Priority struct {
	Location     domain.Location
	VisitCount   int
	Satisfaction float64
	ImpactScore  float64
	IsCritical   bool
	IsQuickWin   bool
}

// Classification thresholds for the priority bands.
const (
	criticalSatisfactionMax = 3.0
	quickWinSatisfactionMax = 4.0
	criticalImpactMin       = 7.0
	quickWinImpactMin       = 3.0
)

// RankImprovementPriorities scores every visited location and orders the
// result by impact, highest first. Locations rated 4.0 or better are never
// flagged regardless of traffic; the ranking is there to surface low-rated
// busy locations, not merely busy ones.
func RankImprovementPriorities(locationStats []LocationStats) []Priority {
	priorities := make([]Priority, 0, len(locationStats))
	for _, ls := range locationStats {
		if ls.VisitCount == 0 {
			continue
		}
		impact := round1((5 - ls.Satisfaction) * math.Log(float64(ls.VisitCount)+1))
		priority := Priority{
			Location:     ls.Location,
			VisitCount:   ls.VisitCount,
			Satisfaction: ls.Satisfaction,
			ImpactScore:  impact,
		}
		switch {
		case ls.Satisfaction < criticalSatisfactionMax && impact >= criticalImpactMin:
			priority.IsCritical = true
		case ls.Satisfaction < quickWinSatisfactionMax && impact > quickWinImpactMin && impact < criticalImpactMin:
			priority.IsQuickWin = true
		}
		priorities = append(priorities, priority)
	}

	sort.SliceStable(priorities, func(i, j int) bool {
		if priorities[i].ImpactScore == priorities[j].ImpactScore {
			return priorities[i].VisitCount > priorities[j].VisitCount
		}
		return priorities[i].ImpactScore > priorities[j].ImpactScore
	})
	return priorities
}
