package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// LocationDocument is the MongoDB schema for a ratable hospital unit.
type LocationDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// RatingDocument embeds one location's ordinal answers inside a submission.
// Unanswered categories are omitted rather than stored as empty strings.
type RatingDocument struct {
	LocationID         primitive.ObjectID `bson:"locationId"`
	Reception          string             `bson:"reception,omitempty"`
	Professionalism    string             `bson:"professionalism,omitempty"`
	Understanding      string             `bson:"understanding,omitempty"`
	PromptnessCare     string             `bson:"promptnessCare,omitempty"`
	PromptnessFeedback string             `bson:"promptnessFeedback,omitempty"`
	Overall            string             `bson:"overall,omitempty"`
}

// ConcernDocument embeds one free-text complaint inside a submission.
type ConcernDocument struct {
	LocationID  primitive.ObjectID `bson:"locationId"`
	Text        string             `bson:"text"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}

// SubmissionDocument is the MongoDB schema for one survey response.
type SubmissionDocument struct {
	ID              primitive.ObjectID   `bson:"_id"`
	SubmittedAt     time.Time            `bson:"submittedAt"`
	VisitPurpose    string               `bson:"visitPurpose"`
	PatientType     string               `bson:"patientType"`
	UserType        string               `bson:"userType"`
	VisitTime       string               `bson:"visitTime"`
	WouldRecommend  bool                 `bson:"wouldRecommend"`
	Recommendation  string               `bson:"recommendation,omitempty"`
	WhyNotRecommend string               `bson:"whyNotRecommend,omitempty"`
	Ratings         []RatingDocument     `bson:"ratings,omitempty"`
	LocationIDs     []primitive.ObjectID `bson:"locationIds,omitempty"`
	Concerns        []ConcernDocument    `bson:"concerns,omitempty"`
}

// mapLocationDocument converts a stored location into its domain record.
// Storage quirks stay on this side of the boundary: an unrecognized type
// string degrades to the department classification instead of leaking up.
func mapLocationDocument(doc LocationDocument) domain.Location {
	locType, err := domain.NewLocationType(doc.Type)
	if err != nil {
		locType = domain.LocationDepartment
	}
	return domain.Location{
		ID:   doc.ID.Hex(),
		Name: doc.Name,
		Type: locType,
	}
}

// mapSubmissionDocument converts a stored submission into its domain record.
// This is the single adapter between storage rows and the typed records the
// aggregation layer consumes. Rating strings pass through ParseRatingLabel so
// legacy or malformed answers come out as unrated instead of panicking later.
func mapSubmissionDocument(doc SubmissionDocument) domain.Submission {
	ratings := make([]domain.Rating, 0, len(doc.Ratings))
	for _, r := range doc.Ratings {
		ratings = append(ratings, domain.Rating{
			LocationID:         r.LocationID.Hex(),
			Reception:          domain.ParseRatingLabel(r.Reception),
			Professionalism:    domain.ParseRatingLabel(r.Professionalism),
			Understanding:      domain.ParseRatingLabel(r.Understanding),
			PromptnessCare:     domain.ParseRatingLabel(r.PromptnessCare),
			PromptnessFeedback: domain.ParseRatingLabel(r.PromptnessFeedback),
			Overall:            domain.ParseRatingLabel(r.Overall),
		})
	}

	locationIDs := make([]string, 0, len(doc.LocationIDs))
	for _, id := range doc.LocationIDs {
		locationIDs = append(locationIDs, id.Hex())
	}

	concerns := make([]domain.Concern, 0, len(doc.Concerns))
	for _, c := range doc.Concerns {
		concerns = append(concerns, domain.Concern{
			LocationID:  c.LocationID.Hex(),
			Text:        c.Text,
			SubmittedAt: c.SubmittedAt,
		})
	}

	return domain.Submission{
		ID:              doc.ID.Hex(),
		SubmittedAt:     doc.SubmittedAt,
		VisitPurpose:    domain.VisitPurpose(doc.VisitPurpose),
		PatientType:     domain.PatientType(doc.PatientType),
		UserType:        domain.UserType(doc.UserType),
		VisitRecency:    domain.VisitRecency(doc.VisitTime),
		WouldRecommend:  doc.WouldRecommend,
		Recommendation:  doc.Recommendation,
		WhyNotRecommend: doc.WhyNotRecommend,
		Ratings:         ratings,
		LocationIDs:     locationIDs,
		Concerns:        concerns,
	}
}
