package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careloop/patient-survey-services/api/internal/survey/application"
	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// SubmissionRepository persists survey submissions in MongoDB.
type SubmissionRepository struct {
	submissions *mongo.Collection
}

// NewSubmissionRepository binds the repository to its collection.
func NewSubmissionRepository(db *mongo.Database, collection string) *SubmissionRepository {
	return &SubmissionRepository{submissions: db.Collection(collection)}
}

// Find translates the date-range and visit-purpose filter into a Mongo query
// and returns matching submissions, newest first.
func (r *SubmissionRepository) Find(ctx context.Context, filter application.SubmissionFilter) ([]domain.Submission, error) {
	mongoFilter := bson.M{}

	dateClause := bson.M{}
	if !filter.From.IsZero() {
		dateClause["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateClause["$lte"] = filter.To
	}
	if len(dateClause) > 0 {
		mongoFilter["submittedAt"] = dateClause
	}

	if filter.VisitPurpose != "" {
		mongoFilter["visitPurpose"] = string(filter.VisitPurpose)
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.submissions.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]domain.Submission, 0)
	for cursor.Next(ctx) {
		var doc SubmissionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		submissions = append(submissions, mapSubmissionDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return submissions, nil
}

// Insert stores a new submission and writes the assigned ID back onto the
// domain record.
func (r *SubmissionRepository) Insert(ctx context.Context, submission *domain.Submission) error {
	doc, err := buildSubmissionDocument(submission)
	if err != nil {
		return err
	}

	if _, err := r.submissions.InsertOne(ctx, doc); err != nil {
		return err
	}

	submission.ID = doc.ID.Hex()
	submission.SubmittedAt = doc.SubmittedAt
	return nil
}

// buildSubmissionDocument converts a domain submission into its storage shape.
// Location references must be valid object IDs; anything else is a caller bug
// surfaced as an error rather than silently dropped.
func buildSubmissionDocument(submission *domain.Submission) (SubmissionDocument, error) {
	submittedAt := submission.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now().UTC()
	}

	ratings := make([]RatingDocument, 0, len(submission.Ratings))
	for _, rating := range submission.Ratings {
		locID, err := parseLocationObjectID(rating.LocationID)
		if err != nil {
			return SubmissionDocument{}, err
		}
		ratings = append(ratings, RatingDocument{
			LocationID:         locID,
			Reception:          string(rating.Reception),
			Professionalism:    string(rating.Professionalism),
			Understanding:      string(rating.Understanding),
			PromptnessCare:     string(rating.PromptnessCare),
			PromptnessFeedback: string(rating.PromptnessFeedback),
			Overall:            string(rating.Overall),
		})
	}

	locationIDs := make([]primitive.ObjectID, 0, len(submission.LocationIDs))
	for _, id := range submission.LocationIDs {
		locID, err := parseLocationObjectID(id)
		if err != nil {
			return SubmissionDocument{}, err
		}
		locationIDs = append(locationIDs, locID)
	}

	concerns := make([]ConcernDocument, 0, len(submission.Concerns))
	for _, concern := range submission.Concerns {
		locID, err := parseLocationObjectID(concern.LocationID)
		if err != nil {
			return SubmissionDocument{}, err
		}
		concernAt := concern.SubmittedAt
		if concernAt.IsZero() {
			concernAt = submittedAt
		}
		concerns = append(concerns, ConcernDocument{
			LocationID:  locID,
			Text:        concern.Text,
			SubmittedAt: concernAt,
		})
	}

	return SubmissionDocument{
		ID:              primitive.NewObjectID(),
		SubmittedAt:     submittedAt,
		VisitPurpose:    string(submission.VisitPurpose),
		PatientType:     string(submission.PatientType),
		UserType:        string(submission.UserType),
		VisitTime:       string(submission.VisitRecency),
		WouldRecommend:  submission.WouldRecommend,
		Recommendation:  submission.Recommendation,
		WhyNotRecommend: submission.WhyNotRecommend,
		Ratings:         ratings,
		LocationIDs:     locationIDs,
		Concerns:        concerns,
	}, nil
}

func parseLocationObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid location id %q: %w", id, err)
	}
	return objectID, nil
}
