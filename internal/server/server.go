package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/careloop/patient-survey-services/api/internal/cache"
	"github.com/careloop/patient-survey-services/api/internal/config"
	mongodoc "github.com/careloop/patient-survey-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/careloop/patient-survey-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
	publichttp "github.com/careloop/patient-survey-services/api/internal/interfaces/http/public"
	"github.com/careloop/patient-survey-services/api/internal/survey/application"
)

// Server is the composition root: it assembles repositories, application
// services and HTTP handlers, and manages the HTTP server lifecycle.
type Server struct {
	logger               *logrus.Logger
	client               *mongo.Client
	database             *mongo.Database
	location             *time.Location
	dashboardService     application.DashboardQueryService
	locationService      application.LocationQueryService
	comparisonService    application.ComparisonQueryService
	feedbackService      application.FeedbackQueryService
	submissionQueries    application.SubmissionQueryService
	submissionCommands   application.SubmissionCommandService
	jwtConfigs           []config.JWTConfig
	jwtAudience          string
	httpClient           *http.Client
	messengerEndpoint    string
	messengerDestination string
	adminDashboardURL    string
	failedNotifications  *mongo.Collection
	addr                 string
	allowedOrigins       []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run starts the HTTP server with routing and middleware assembled. Only
// infrastructure wiring lives here; domain logic stays in the inner layers.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:               s.logger,
		Dashboards:           s.dashboardService,
		Locations:            s.locationService,
		Comparisons:          s.comparisonService,
		Feedback:             s.feedbackService,
		Submissions:          s.submissionCommands,
		Location:             s.location,
		HTTPClient:           s.httpClient,
		MessengerEndpoint:    s.messengerEndpoint,
		MessengerDestination: s.messengerDestination,
		AdminDashboardURL:    s.adminDashboardURL,
		FailedNotifications:  s.failedNotifications,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:      s.logger,
		Submissions: s.submissionQueries,
		Dashboards:  s.dashboardService,
		Location:    s.location,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Infof("HTTP server listening on http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS returns a middleware applying CORS headers for allowed origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports storage connectivity for the monitoring probes.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// authMiddleware validates the Authorization JWT and stores the principal in
// the request context. Admin routes sit behind it.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "a Bearer token is required"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "access token is empty"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:       claims.Subject,
			Name:     claims.Name,
			Username: claims.PreferredUsername,
			Role:     claims.Role,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthToken tries each configured JWT issuer in order, checking the
// signature and the issuer/audience pairing. Tokens matching none of the
// configurations are rejected.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("authentication is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}

		now := time.Now()
		if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
			continue
		}
		if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("access token is invalid")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	Role              string `json:"role,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// writeJSON centralises JSON response writing for server-level handlers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode JSON response")
	}
}

// shutdown disconnects the MongoDB client with a timeout so process exit
// does not leak connections.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.WithError(err).Warn("error while disconnecting MongoDB")
	}
}

// waitForShutdown watches ListenAndServe and OS signals to drive a graceful
// shutdown.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.WithError(err).Fatal("server exited abnormally")
		}
	case sig := <-sigChan:
		srv.logger.Infof("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.WithError(err).Warn("error during server shutdown")
		}
	}

	srv.shutdown(context.Background())
}

// New takes the Config and a connected Mongo client and assembles the
// application services and handlers into a runnable Server.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("WAT", 1*60*60)
		cfg.ServerLog.WithError(err).Warnf("could not load timezone %s, using WAT", cfg.Timezone)
	}

	srv := &Server{
		logger:               cfg.ServerLog,
		client:               client,
		database:             client.Database(cfg.MongoDatabase),
		location:             loc,
		jwtConfigs:           append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:          cfg.JWTAudience,
		httpClient:           &http.Client{Timeout: cfg.MessengerTimeout},
		messengerEndpoint:    strings.TrimRight(strings.TrimSpace(cfg.MessengerEndpoint), "/"),
		messengerDestination: cfg.MessengerDestination,
		adminDashboardURL:    cfg.AdminDashboardURL,
		addr:                 cfg.Addr,
		allowedOrigins:       append([]string(nil), cfg.AllowedOrigins...),
	}
	srv.failedNotifications = srv.database.Collection(cfg.FailedNotificationCollection)

	submissionRepo := mongodoc.NewSubmissionRepository(srv.database, cfg.SubmissionCollection)
	locationRepo := mongodoc.NewLocationRepository(srv.database, cfg.LocationCollection)

	store := cache.NewTTL(cfg.CacheTTL)
	srv.dashboardService = application.NewCachedDashboardService(
		application.NewDashboardQueryService(submissionRepo, locationRepo, cfg.ServerLog, loc), store)
	srv.locationService = application.NewCachedLocationService(
		application.NewLocationQueryService(submissionRepo, locationRepo, cfg.ServerLog), store)
	srv.comparisonService = application.NewCachedComparisonService(
		application.NewComparisonQueryService(submissionRepo, locationRepo, cfg.ServerLog), store)
	srv.feedbackService = application.NewCachedFeedbackService(
		application.NewFeedbackQueryService(submissionRepo, cfg.ServerLog), store)
	srv.submissionQueries = application.NewSubmissionQueryService(submissionRepo)
	srv.submissionCommands = application.NewSubmissionCommandService(submissionRepo)

	return srv
}
