package public

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	"github.com/careloop/patient-survey-services/api/internal/survey/application"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

var errBadDateParam = errors.New("dates must use the YYYY-MM-DD format")

// parseSubmissionFilter reads the shared from/to/purpose query parameters.
// Dates are interpreted in the hospital's timezone and the "to" bound is
// pushed to end of day so it stays inclusive.
func (h *Handler) parseSubmissionFilter(query url.Values) (application.SubmissionFilter, error) {
	filter := application.SubmissionFilter{}

	from, ok := common.ParseDate(query.Get("from"), h.location)
	if !ok {
		return filter, errBadDateParam
	}
	to, ok := common.ParseDate(query.Get("to"), h.location)
	if !ok {
		return filter, errBadDateParam
	}
	filter.From = from
	filter.To = common.EndOfDay(to)

	if raw := strings.TrimSpace(query.Get("purpose")); raw != "" {
		purpose, err := domain.NewVisitPurpose(raw)
		if err != nil {
			return filter, err
		}
		filter.VisitPurpose = purpose
	}

	return filter, nil
}

func buildLocationStatsResponse(stats insights.LocationStats) locationStatsResponse {
	var lastVisit *time.Time
	if !stats.LastVisitAt.IsZero() {
		t := stats.LastVisitAt
		lastVisit = &t
	}
	return locationStatsResponse{
		ID:            stats.Location.ID,
		Name:          stats.Location.Name,
		Type:          string(stats.Location.Type),
		TypeLabel:     common.DisplayLocationType(stats.Location.Type),
		VisitCount:    stats.VisitCount,
		RecommendRate: stats.RecommendRate,
		RatingCount:   stats.RatingCount,
		Averages: categoryAveragesPayload{
			Reception:          stats.Averages.Reception,
			Professionalism:    stats.Averages.Professionalism,
			Understanding:      stats.Averages.Understanding,
			PromptnessCare:     stats.Averages.PromptnessCare,
			PromptnessFeedback: stats.Averages.PromptnessFeedback,
			Overall:            stats.Averages.Overall,
		},
		Satisfaction: stats.Satisfaction,
		LastVisitAt:  lastVisit,
	}
}

func buildLocationStatsResponses(items []insights.LocationStats) []locationStatsResponse {
	result := make([]locationStatsResponse, 0, len(items))
	for _, item := range items {
		result = append(result, buildLocationStatsResponse(item))
	}
	return result
}

func buildPriorityResponses(items []insights.Priority) []priorityResponse {
	result := make([]priorityResponse, 0, len(items))
	for _, item := range items {
		result = append(result, priorityResponse{
			ID:           item.Location.ID,
			Name:         item.Location.Name,
			Type:         string(item.Location.Type),
			VisitCount:   item.VisitCount,
			Satisfaction: item.Satisfaction,
			ImpactScore:  item.ImpactScore,
			IsCritical:   item.IsCritical,
			IsQuickWin:   item.IsQuickWin,
		})
	}
	return result
}

func buildDistributionEntries(items []insights.LabelCount) []distributionEntry {
	result := make([]distributionEntry, 0, len(items))
	for _, item := range items {
		result = append(result, distributionEntry{
			Label: string(item.Label),
			Count: item.Count,
		})
	}
	return result
}

// buildGroupStatsResponses converts aggregation groups to DTOs, resolving
// each group key to its display label through the given mapper.
func buildGroupStatsResponses(items []insights.GroupStats, display func(string) string) []groupStatsResponse {
	result := make([]groupStatsResponse, 0, len(items))
	for _, item := range items {
		label := item.Key
		if display != nil {
			label = display(item.Key)
		}
		result = append(result, groupStatsResponse{
			Key:           item.Key,
			Label:         label,
			Count:         item.Count,
			Satisfaction:  item.Satisfaction,
			RecommendRate: item.RecommendRate,
		})
	}
	return result
}

func buildDepartmentScoreResponse(score insights.DepartmentScore) departmentScoreResponse {
	return departmentScoreResponse{
		ID:           score.Location.ID,
		Name:         score.Location.Name,
		Score:        score.Score,
		Samples:      score.Samples,
		Insufficient: score.Insufficient,
	}
}

func buildCohortResponse(stats insights.CohortStats, label string) cohortResponse {
	return cohortResponse{
		Key:              stats.Key,
		Label:            label,
		Count:            stats.Count,
		Satisfaction:     stats.Satisfaction,
		RecommendRate:    stats.RecommendRate,
		TopDepartment:    buildDepartmentScoreResponse(stats.TopDepartment),
		BottomDepartment: buildDepartmentScoreResponse(stats.BottomDepartment),
		CommonLocations:  buildLocationStatsResponses(stats.CommonLocations),
	}
}

func buildWordCountPayloads(items []insights.WordCount) []wordCountPayload {
	result := make([]wordCountPayload, 0, len(items))
	for _, item := range items {
		result = append(result, wordCountPayload{Word: item.Word, Count: item.Count})
	}
	return result
}
