package insights

import (
	"sort"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// MinDepartmentSamples is the minimum number of ratings a location needs
// before it can be named a cohort's top or bottom department. Locations
// below the threshold still count toward visit tallies.
const MinDepartmentSamples = 2

// DepartmentScore names one location's standing within a cohort.
// Insufficient marks the fallback case where no location met the sample
// threshold and the most-visited location is reported with score 0.
type DepartmentScore struct {
	Location     domain.Location
	Score        float64
	Samples      int
	Insufficient bool
}

// CohortStats summarises one partition of the submission set.
type CohortStats struct {
	Key              string
	Count            int
	Satisfaction     float64
	RecommendRate    int
	TopDepartment    DepartmentScore
	BottomDepartment DepartmentScore
	CommonLocations  []LocationStats
}

// CompareVisitPurpose splits submissions into the General Practice and
// Occupational Health cohorts and computes comparable statistics for each.
// The occupational-health unit's own location is excluded from the OH
// cohort's common locations and top/bottom selection; it is the cohort's
// defining location, not an interesting comparison point.
func CompareVisitPurpose(subs []domain.Submission, locations []domain.Location) (general, occupational CohortStats) {
	var generalSubs, occupationalSubs []domain.Submission
	for _, sub := range subs {
		if sub.VisitPurpose == domain.PurposeOccupationalHealth {
			occupationalSubs = append(occupationalSubs, sub)
		} else {
			generalSubs = append(generalSubs, sub)
		}
	}

	general = buildCohortStats(string(domain.PurposeGeneralPractice), generalSubs, locations, nil)
	occupational = buildCohortStats(string(domain.PurposeOccupationalHealth), occupationalSubs, locations, excludeOccupationalUnit)
	return general, occupational
}

// ComparePatientType splits submissions into new and returning patients.
func ComparePatientType(subs []domain.Submission, locations []domain.Location) (newPatients, returning CohortStats) {
	var newSubs, returningSubs []domain.Submission
	for _, sub := range subs {
		if sub.PatientType == domain.PatientReturning {
			returningSubs = append(returningSubs, sub)
		} else {
			newSubs = append(newSubs, sub)
		}
	}

	newPatients = buildCohortStats(string(domain.PatientNew), newSubs, locations, nil)
	returning = buildCohortStats(string(domain.PatientReturning), returningSubs, locations, nil)
	return newPatients, returning
}

func excludeOccupationalUnit(ls LocationStats) bool {
	return ls.Location.Type == domain.LocationOccupationalHealth
}

// buildCohortStats computes per-location averages restricted to the cohort's
// submissions, using the same accumulation as AggregateLocations.
func buildCohortStats(key string, members []domain.Submission, locations []domain.Location, exclude func(LocationStats) bool) CohortStats {
	locationStats := AggregateLocations(members, locations)

	eligible := make([]LocationStats, 0, len(locationStats))
	for _, ls := range locationStats {
		if ls.VisitCount == 0 {
			continue
		}
		if exclude != nil && exclude(ls) {
			continue
		}
		eligible = append(eligible, ls)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].VisitCount == eligible[j].VisitCount {
			return eligible[i].LastVisitAt.After(eligible[j].LastVisitAt)
		}
		return eligible[i].VisitCount > eligible[j].VisitCount
	})

	top, bottom := SelectTopBottom(eligible, MinDepartmentSamples)

	return CohortStats{
		Key:              key,
		Count:            len(members),
		Satisfaction:     meanSatisfaction(members),
		RecommendRate:    recommendRate(members),
		TopDepartment:    top,
		BottomDepartment: bottom,
		CommonLocations:  eligible,
	}
}

// SelectTopBottom picks the highest and lowest scored locations among those
// meeting the sample threshold. When none qualify it falls back to the
// most-visited location with score 0 and the insufficient-data marker so the
// dashboard renders "N/A" instead of crashing on an empty cohort.
func SelectTopBottom(locationStats []LocationStats, minSamples int) (top, bottom DepartmentScore) {
	qualified := make([]LocationStats, 0, len(locationStats))
	for _, ls := range locationStats {
		if ls.RatingCount >= minSamples {
			qualified = append(qualified, ls)
		}
	}

	if len(qualified) == 0 {
		fallback := DepartmentScore{Insufficient: true}
		if len(locationStats) > 0 {
			mostVisited := locationStats[0]
			for _, ls := range locationStats[1:] {
				if ls.VisitCount > mostVisited.VisitCount {
					mostVisited = ls
				}
			}
			fallback.Location = mostVisited.Location
			fallback.Samples = mostVisited.RatingCount
		}
		return fallback, fallback
	}

	best, worst := qualified[0], qualified[0]
	for _, ls := range qualified[1:] {
		if ls.Satisfaction > best.Satisfaction {
			best = ls
		}
		if ls.Satisfaction < worst.Satisfaction {
			worst = ls
		}
	}

	top = DepartmentScore{Location: best.Location, Score: best.Satisfaction, Samples: best.RatingCount}
	bottom = DepartmentScore{Location: worst.Location, Score: worst.Satisfaction, Samples: worst.RatingCount}
	return top, bottom
}
