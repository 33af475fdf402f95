package admin

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/careloop/patient-survey-services/api/internal/survey/application"
)

// Handler wires admin HTTP endpoints to application services. Everything
// registered here sits behind the JWT middleware installed by the server.
type Handler struct {
	logger      *logrus.Logger
	submissions application.SubmissionQueryService
	dashboards  application.DashboardQueryService
	location    *time.Location
}

// Config provides dependencies for Handler.
type Config struct {
	Logger      *logrus.Logger
	Submissions application.SubmissionQueryService
	Dashboards  application.DashboardQueryService
	Location    *time.Location
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		submissions: cfg.Submissions,
		dashboards:  cfg.Dashboards,
		location:    cfg.Location,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/submissions", h.submissionListHandler())
	r.Get("/export/overview.csv", h.exportOverviewCSVHandler())
	r.Get("/export/overview.xlsx", h.exportOverviewXLSXHandler())
}
