package domain

import "time"

// Submission represents one completed patient survey response.
// Submissions are created once at intake and are read-only for the
// reporting layer; satisfaction is always derived from Ratings,
// never stored.
type Submission struct {
	ID              string
	SubmittedAt     time.Time
	VisitPurpose    VisitPurpose
	PatientType     PatientType
	UserType        UserType
	VisitRecency    VisitRecency
	WouldRecommend  bool
	Recommendation  string
	WhyNotRecommend string
	Ratings         []Rating
	LocationIDs     []string
	Concerns        []Concern
}

// Rating holds one visited location's ordinal ratings within a submission.
// Any category may be absent (empty label); absent categories are excluded
// from averages, not treated as zero.
type Rating struct {
	LocationID         string
	Reception          RatingLabel
	Professionalism    RatingLabel
	Understanding      RatingLabel
	PromptnessCare     RatingLabel
	PromptnessFeedback RatingLabel
	Overall            RatingLabel
}

// Concern is a free-text complaint tied to a submission and a location.
type Concern struct {
	LocationID  string
	Text        string
	SubmittedAt time.Time
}

// Location is a ratable unit of the hospital.
type Location struct {
	ID   string
	Name string
	Type LocationType
}
