// Command seed populates MongoDB with a realistic set of hospital locations
// and synthetic survey submissions for local development and demos.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	submissionCount int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	locations   string
	submissions string
}

type locationDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type ratingDocument struct {
	LocationID         primitive.ObjectID `bson:"locationId"`
	Reception          string             `bson:"reception,omitempty"`
	Professionalism    string             `bson:"professionalism,omitempty"`
	Understanding      string             `bson:"understanding,omitempty"`
	PromptnessCare     string             `bson:"promptnessCare,omitempty"`
	PromptnessFeedback string             `bson:"promptnessFeedback,omitempty"`
	Overall            string             `bson:"overall,omitempty"`
}

type concernDocument struct {
	LocationID  primitive.ObjectID `bson:"locationId"`
	Text        string             `bson:"text"`
	SubmittedAt time.Time          `bson:"submittedAt"`
}

type submissionDocument struct {
	ID              primitive.ObjectID   `bson:"_id"`
	SubmittedAt     time.Time            `bson:"submittedAt"`
	VisitPurpose    string               `bson:"visitPurpose"`
	PatientType     string               `bson:"patientType"`
	UserType        string               `bson:"userType"`
	VisitTime       string               `bson:"visitTime"`
	WouldRecommend  bool                 `bson:"wouldRecommend"`
	Recommendation  string               `bson:"recommendation,omitempty"`
	WhyNotRecommend string               `bson:"whyNotRecommend,omitempty"`
	Ratings         []ratingDocument     `bson:"ratings,omitempty"`
	LocationIDs     []primitive.ObjectID `bson:"locationIds,omitempty"`
	Concerns        []concernDocument    `bson:"concerns,omitempty"`
}

// seedLocation pairs a unit with a quality bias so the generated dashboard
// shows believable spread: some units score well, some poorly.
type seedLocation struct {
	name string
	typ  string
	bias float64
	id   primitive.ObjectID
}

var ratingLabels = []string{"Poor", "Fair", "Good", "Very Good", "Excellent"}

var userTypes = []string{"employee", "retiree", "dependant", "non-staff"}

var visitRecencies = []string{"less-than-month", "one-two-months", "three-six-months", "more-than-six-months"}

var hospitalUnits = []seedLocation{
	{name: "General Outpatient Department", typ: "department", bias: 0.55},
	{name: "Pharmacy", typ: "department", bias: 0.35},
	{name: "Laboratory", typ: "department", bias: 0.6},
	{name: "Radiology", typ: "department", bias: 0.65},
	{name: "Physiotherapy", typ: "department", bias: 0.75},
	{name: "Dental Clinic", typ: "department", bias: 0.7},
	{name: "Eye Clinic", typ: "department", bias: 0.6},
	{name: "Antenatal Clinic", typ: "department", bias: 0.5},
	{name: "Accident and Emergency", typ: "department", bias: 0.3},
	{name: "Medical Records", typ: "department", bias: 0.4},
	{name: "Male Ward", typ: "ward", bias: 0.55},
	{name: "Female Ward", typ: "ward", bias: 0.6},
	{name: "Children's Ward", typ: "ward", bias: 0.65},
	{name: "Staff Canteen", typ: "canteen", bias: 0.45},
	{name: "Occupational Health Unit", typ: "occupational_health", bias: 0.7},
}

var concernTexts = []string{
	"The waiting time was too long before anyone attended to me",
	"Queue at the pharmacy moved very slowly",
	"The waiting room was crowded and hot",
	"Nobody explained how long the results would take",
	"Staff at the desk were dismissive when I asked questions",
	"The toilets near the ward were not clean",
	"I waited hours for my test results",
	"Appointment time was not respected",
}

var recommendationTexts = []string{
	"More seats in the waiting area would help",
	"Please add more staff during morning hours",
	"Results could be sent by text message",
	"A ticket number system would make the queue fair",
	"Extend the pharmacy opening hours",
	"",
	"",
}

var whyNotTexts = []string{
	"The waiting time was simply too long",
	"Staff attitude needs to improve",
	"I was sent between departments with no clear direction",
	"The process was too confusing",
}

func main() {
	opts := parseFlags()

	_ = godotenv.Load()

	cfg := collections{
		locations:   envOrDefault("LOCATION_COLLECTION", "locations"),
		submissions: envOrDefault("SUBMISSION_COLLECTION", "submissions"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "patient-survey")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropCollections(ctx, db, cfg)
		log.Printf("dropped existing collections")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("could not create indexes: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	locationDocs := generateLocations()
	if err := insertMany(ctx, db.Collection(cfg.locations), toAnySlice(locationDocs)); err != nil {
		log.Fatalf("could not insert locations: %v", err)
	}

	submissionDocs := generateSubmissions(rng, opts.submissionCount)
	if err := insertMany(ctx, db.Collection(cfg.submissions), toAnySlice(submissionDocs)); err != nil {
		log.Fatalf("could not insert submissions: %v", err)
	}

	log.Printf("seed complete: locations=%d submissions=%d", len(locationDocs), len(submissionDocs))
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.submissionCount, "submissions", 250, "number of synthetic submissions to generate")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop existing collections before inserting")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "random seed for reproducible runs")
	flag.Parse()

	if opts.submissionCount <= 0 {
		log.Fatal("submissions must be at least 1")
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) {
	for _, name := range []string{cfg.locations, cfg.submissions} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			// Drop errors on missing collections too, so just warn.
			log.Printf("WARN: could not drop collection %s: %v", name, err)
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	locationIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("uniq_location_name").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("idx_location_type"),
		},
	}
	if _, err := db.Collection(cfg.locations).Indexes().CreateMany(ctx, locationIndexes); err != nil {
		return err
	}

	submissionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "submittedAt", Value: -1}},
			Options: options.Index().SetName("idx_submission_submittedAt"),
		},
		{
			Keys:    bson.D{{Key: "visitPurpose", Value: 1}, {Key: "submittedAt", Value: -1}},
			Options: options.Index().SetName("idx_submission_purpose_date"),
		},
	}
	_, err := db.Collection(cfg.submissions).Indexes().CreateMany(ctx, submissionIndexes)
	return err
}

func generateLocations() []locationDocument {
	now := time.Now().UTC()
	docs := make([]locationDocument, 0, len(hospitalUnits))
	for i := range hospitalUnits {
		hospitalUnits[i].id = primitive.NewObjectID()
		docs = append(docs, locationDocument{
			ID:        hospitalUnits[i].id,
			Name:      hospitalUnits[i].name,
			Type:      hospitalUnits[i].typ,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return docs
}

func generateSubmissions(rng *rand.Rand, count int) []submissionDocument {
	docs := make([]submissionDocument, 0, count)
	for i := 0; i < count; i++ {
		docs = append(docs, generateSubmission(rng))
	}
	return docs
}

func generateSubmission(rng *rand.Rand) submissionDocument {
	submittedAt := randomVisitTime(rng)

	occupational := rng.Float64() < 0.3
	purpose := "general-practice"
	if occupational {
		purpose = "occupational-health"
	}

	patientType := "returning"
	if rng.Float64() < 0.35 {
		patientType = "new"
	}

	visited := pickLocations(rng, occupational)

	ratings := make([]ratingDocument, 0, len(visited))
	locationIDs := make([]primitive.ObjectID, 0, len(visited))
	concerns := make([]concernDocument, 0)
	moodSum := 0.0

	for _, unit := range visited {
		locationIDs = append(locationIDs, unit.id)
		mood := unit.bias + (rng.Float64()-0.5)*0.4
		moodSum += mood
		ratings = append(ratings, buildRating(rng, unit, mood))

		if mood < 0.35 && rng.Float64() < 0.6 {
			concerns = append(concerns, concernDocument{
				LocationID:  unit.id,
				Text:        concernTexts[rng.Intn(len(concernTexts))],
				SubmittedAt: submittedAt,
			})
		}
	}

	avgMood := moodSum / float64(len(visited))
	wouldRecommend := avgMood > 0.4 || rng.Float64() < 0.2

	doc := submissionDocument{
		ID:             primitive.NewObjectID(),
		SubmittedAt:    submittedAt,
		VisitPurpose:   purpose,
		PatientType:    patientType,
		UserType:       userTypes[rng.Intn(len(userTypes))],
		VisitTime:      visitRecencies[rng.Intn(len(visitRecencies))],
		WouldRecommend: wouldRecommend,
		Ratings:        ratings,
		LocationIDs:    locationIDs,
		Concerns:       concerns,
	}

	if wouldRecommend {
		doc.Recommendation = recommendationTexts[rng.Intn(len(recommendationTexts))]
	} else {
		doc.WhyNotRecommend = whyNotTexts[rng.Intn(len(whyNotTexts))]
	}

	return doc
}

// randomVisitTime spreads submissions over the last 180 days with a daily
// profile that peaks in the morning clinic hours.
func randomVisitTime(rng *rand.Rand) time.Time {
	day := rng.Intn(180)
	base := time.Now().UTC().AddDate(0, 0, -day)

	var hour int
	switch roll := rng.Float64(); {
	case roll < 0.5:
		hour = 8 + rng.Intn(4) // morning clinic
	case roll < 0.85:
		hour = 12 + rng.Intn(5) // afternoon
	default:
		hour = 17 + rng.Intn(5) // evening stragglers
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, rng.Intn(60), rng.Intn(60), 0, time.UTC)
}

// pickLocations chooses 1-4 units for one visit. Occupational health visits
// always pass through the occupational health unit.
func pickLocations(rng *rand.Rand, occupational bool) []seedLocation {
	picked := make([]seedLocation, 0, 4)
	seen := make(map[string]struct{})

	if occupational {
		for _, unit := range hospitalUnits {
			if unit.typ == "occupational_health" {
				picked = append(picked, unit)
				seen[unit.name] = struct{}{}
				break
			}
		}
	}

	target := len(picked) + 1 + rng.Intn(3)
	for len(picked) < target {
		unit := hospitalUnits[rng.Intn(len(hospitalUnits))]
		if _, dup := seen[unit.name]; dup {
			continue
		}
		seen[unit.name] = struct{}{}
		picked = append(picked, unit)
	}
	return picked
}

// buildRating samples the six category answers around the unit's mood.
// Categories are occasionally skipped to mirror partially answered forms.
func buildRating(rng *rand.Rand, unit seedLocation, mood float64) ratingDocument {
	doc := ratingDocument{LocationID: unit.id}
	doc.Overall = sampleLabel(rng, mood)
	if rng.Float64() < 0.9 {
		doc.Reception = sampleLabel(rng, mood)
	}
	if rng.Float64() < 0.85 {
		doc.Professionalism = sampleLabel(rng, mood+0.1)
	}
	if rng.Float64() < 0.8 {
		doc.Understanding = sampleLabel(rng, mood)
	}
	if rng.Float64() < 0.75 {
		doc.PromptnessCare = sampleLabel(rng, mood-0.1)
	}
	if rng.Float64() < 0.6 {
		doc.PromptnessFeedback = sampleLabel(rng, mood-0.15)
	}
	return doc
}

// sampleLabel maps a mood in roughly [0,1] onto the five ordinal labels with
// some noise.
func sampleLabel(rng *rand.Rand, mood float64) string {
	noisy := mood + (rng.Float64()-0.5)*0.3
	switch {
	case noisy < 0.2:
		return ratingLabels[0]
	case noisy < 0.4:
		return ratingLabels[1]
	case noisy < 0.6:
		return ratingLabels[2]
	case noisy < 0.8:
		return ratingLabels[3]
	default:
		return ratingLabels[4]
	}
}

func insertMany(ctx context.Context, collection *mongo.Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](items []T) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		result = append(result, item)
	}
	return result
}
