package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careloop/patient-survey-services/api/internal/survey/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger               *logrus.Logger
	dashboards           application.DashboardQueryService
	locations            application.LocationQueryService
	comparisons          application.ComparisonQueryService
	feedback             application.FeedbackQueryService
	submissions          application.SubmissionCommandService
	location             *time.Location
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	adminDashboardURL    string
	failedNotifications  *mongo.Collection
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger               *logrus.Logger
	Dashboards           application.DashboardQueryService
	Locations            application.LocationQueryService
	Comparisons          application.ComparisonQueryService
	Feedback             application.FeedbackQueryService
	Submissions          application.SubmissionCommandService
	Location             *time.Location
	HTTPClient           *http.Client
	MessengerEndpoint    string
	MessengerDestination string
	AdminDashboardURL    string
	FailedNotifications  *mongo.Collection
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:               cfg.Logger,
		dashboards:           cfg.Dashboards,
		locations:            cfg.Locations,
		comparisons:          cfg.Comparisons,
		feedback:             cfg.Feedback,
		submissions:          cfg.Submissions,
		location:             cfg.Location,
		httpClient:           cfg.HTTPClient,
		messengerEndpoint:    cfg.MessengerEndpoint,
		messengerDestination: cfg.MessengerDestination,
		adminDashboardURL:    cfg.AdminDashboardURL,
		failedNotifications:  cfg.FailedNotifications,
	}
}

// Register mounts all public routes onto the router. Survey intake is
// anonymous, so nothing here is gated by auth.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard/overview", h.overviewHandler())
	r.Get("/dashboard/locations", h.locationStatsHandler())
	r.Get("/dashboard/priorities", h.prioritiesHandler())
	r.Get("/dashboard/visit-time", h.visitTimeHandler())
	r.Get("/dashboard/demographics", h.demographicsHandler())
	r.Get("/dashboard/comparison/visit-purpose", h.visitPurposeComparisonHandler())
	r.Get("/dashboard/comparison/patient-type", h.patientTypeComparisonHandler())
	r.Get("/dashboard/feedback", h.feedbackHandler())
	r.Post("/submissions", h.submissionCreateHandler())
}
