package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// ErrInvalidSubmission marks intake payloads rejected by validation, as
// opposed to storage failures. Handlers translate it to a client error.
var ErrInvalidSubmission = errors.New("invalid submission")

func invalidSubmission(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidSubmission, err)
}

type submissionCommandService struct {
	repo SubmissionRepository
}

// NewSubmissionCommandService builds the intake-side service.
func NewSubmissionCommandService(repo SubmissionRepository) SubmissionCommandService {
	return &submissionCommandService{repo: repo}
}

// Submit validates the raw intake payload through the domain constructors
// and persists the resulting submission. Submissions are immutable after
// this point.
func (s *submissionCommandService) Submit(ctx context.Context, cmd SubmitSubmissionCommand) (*domain.Submission, error) {
	sub, err := buildSubmissionFromCommand(cmd)
	if err != nil {
		return nil, err
	}
	sub.SubmittedAt = time.Now().UTC()
	for i := range sub.Concerns {
		sub.Concerns[i].SubmittedAt = sub.SubmittedAt
	}
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func buildSubmissionFromCommand(cmd SubmitSubmissionCommand) (*domain.Submission, error) {
	purpose, err := domain.NewVisitPurpose(cmd.VisitPurpose)
	if err != nil {
		return nil, invalidSubmission(err)
	}
	patientType, err := domain.NewPatientType(cmd.PatientType)
	if err != nil {
		return nil, invalidSubmission(err)
	}
	userType, err := domain.NewUserType(cmd.UserType)
	if err != nil {
		return nil, invalidSubmission(err)
	}
	recency, err := domain.NewVisitRecency(cmd.VisitRecency)
	if err != nil {
		return nil, invalidSubmission(err)
	}

	if len(cmd.Ratings) == 0 {
		return nil, invalidSubmission(errors.New("at least one location rating is required"))
	}

	ratings := make([]domain.Rating, 0, len(cmd.Ratings))
	locationIDs := make([]string, 0, len(cmd.Ratings))
	seen := make(map[string]struct{})
	for _, input := range cmd.Ratings {
		locationID := strings.TrimSpace(input.LocationID)
		if locationID == "" {
			return nil, invalidSubmission(errors.New("rating is missing its location"))
		}
		if _, dup := seen[locationID]; dup {
			return nil, invalidSubmission(errors.New("duplicate rating for location " + locationID))
		}
		seen[locationID] = struct{}{}
		locationIDs = append(locationIDs, locationID)
		ratings = append(ratings, domain.Rating{
			LocationID:         locationID,
			Reception:          domain.ParseRatingLabel(input.Reception),
			Professionalism:    domain.ParseRatingLabel(input.Professionalism),
			Understanding:      domain.ParseRatingLabel(input.Understanding),
			PromptnessCare:     domain.ParseRatingLabel(input.PromptnessCare),
			PromptnessFeedback: domain.ParseRatingLabel(input.PromptnessFeedback),
			Overall:            domain.ParseRatingLabel(input.Overall),
		})
	}

	concerns := make([]domain.Concern, 0, len(cmd.Concerns))
	for _, input := range cmd.Concerns {
		text := strings.TrimSpace(input.Text)
		if text == "" {
			continue
		}
		concerns = append(concerns, domain.Concern{
			LocationID: strings.TrimSpace(input.LocationID),
			Text:       text,
		})
	}

	return &domain.Submission{
		VisitPurpose:    purpose,
		PatientType:     patientType,
		UserType:        userType,
		VisitRecency:    recency,
		WouldRecommend:  cmd.WouldRecommend,
		Recommendation:  strings.TrimSpace(cmd.Recommendation),
		WhyNotRecommend: strings.TrimSpace(cmd.WhyNotRecommend),
		Ratings:         ratings,
		LocationIDs:     locationIDs,
		Concerns:        concerns,
	}, nil
}

type submissionQueryService struct {
	repo SubmissionRepository
}

// NewSubmissionQueryService builds the reader behind the admin raw listing.
func NewSubmissionQueryService(repo SubmissionRepository) SubmissionQueryService {
	return &submissionQueryService{repo: repo}
}

func (s *submissionQueryService) List(ctx context.Context, filter SubmissionFilter, paging Paging) ([]domain.Submission, int, error) {
	subs, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total := len(subs)
	page := paging.Page
	if page < 1 {
		page = 1
	}
	limit := paging.Limit
	if limit < 1 {
		limit = 20
	}

	start := (page - 1) * limit
	if start >= total {
		return []domain.Submission{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return subs[start:end], total, nil
}
