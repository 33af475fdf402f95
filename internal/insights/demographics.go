package insights

import "github.com/careloop/patient-survey-services/api/internal/survey/domain"

// GroupStats is the shared shape for demographic and time-bucket breakdowns.
type GroupStats struct {
	Key           string
	Count         int
	Satisfaction  float64
	RecommendRate int
}

// AggregateByUserType groups submissions by employment category. Groups with
// no members are omitted; the Location Aggregator's always-report rule does
// not apply here.
func AggregateByUserType(subs []domain.Submission) []GroupStats {
	groups := make(map[domain.UserType][]domain.Submission)
	for _, sub := range subs {
		groups[sub.UserType] = append(groups[sub.UserType], sub)
	}

	result := make([]GroupStats, 0, len(groups))
	for _, userType := range domain.UserTypes {
		members := groups[userType]
		if len(members) == 0 {
			continue
		}
		result = append(result, buildGroupStats(string(userType), members))
	}
	return result
}

// AggregateByPatientType groups submissions into new vs returning patients.
// This is an independent grouping, not a cross-product with user type.
func AggregateByPatientType(subs []domain.Submission) []GroupStats {
	groups := make(map[domain.PatientType][]domain.Submission)
	for _, sub := range subs {
		groups[sub.PatientType] = append(groups[sub.PatientType], sub)
	}

	result := make([]GroupStats, 0, len(groups))
	for _, patientType := range []domain.PatientType{domain.PatientNew, domain.PatientReturning} {
		members := groups[patientType]
		if len(members) == 0 {
			continue
		}
		result = append(result, buildGroupStats(string(patientType), members))
	}
	return result
}

func buildGroupStats(key string, members []domain.Submission) GroupStats {
	return GroupStats{
		Key:           key,
		Count:         len(members),
		Satisfaction:  meanSatisfaction(members),
		RecommendRate: recommendRate(members),
	}
}
