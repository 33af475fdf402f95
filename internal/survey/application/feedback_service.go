package application

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

type feedbackQueryService struct {
	submissions SubmissionRepository
	logger      *logrus.Logger
}

// NewFeedbackQueryService builds the reader behind the free-text feedback tab.
func NewFeedbackQueryService(submissions SubmissionRepository, logger *logrus.Logger) FeedbackQueryService {
	return &feedbackQueryService{submissions: submissions, logger: logger}
}

// Themes runs the word-frequency analysis over the three free-text
// collections independently: department concerns, recommendations and
// non-recommendation reasons.
func (s *feedbackQueryService) Themes(ctx context.Context, filter SubmissionFilter, limit int) FeedbackThemes {
	subs, err := s.submissions.Find(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("feedback fetch failed, serving empty themes")
		subs = nil
	}

	var concernTexts, recommendations, whyNot []string
	concernCount := 0
	for _, sub := range subs {
		for _, concern := range sub.Concerns {
			concernTexts = append(concernTexts, concern.Text)
			concernCount++
		}
		if sub.Recommendation != "" {
			recommendations = append(recommendations, sub.Recommendation)
		}
		if sub.WhyNotRecommend != "" {
			whyNot = append(whyNot, sub.WhyNotRecommend)
		}
	}

	return FeedbackThemes{
		Concerns:        insights.WordFrequencies(concernTexts, limit),
		Recommendations: insights.WordFrequencies(recommendations, limit),
		WhyNotRecommend: insights.WordFrequencies(whyNot, limit),
		ConcernCount:    concernCount,
	}
}

// Concerns lists raw complaints, newest first, for the feedback drill-down.
func (s *feedbackQueryService) Concerns(ctx context.Context, filter SubmissionFilter) []domain.Concern {
	subs, err := s.submissions.Find(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("concern fetch failed, serving empty list")
		return []domain.Concern{}
	}

	concerns := make([]domain.Concern, 0)
	for _, sub := range subs {
		concerns = append(concerns, sub.Concerns...)
	}
	sort.SliceStable(concerns, func(i, j int) bool {
		return concerns[i].SubmittedAt.After(concerns[j].SubmittedAt)
	})
	return concerns
}
