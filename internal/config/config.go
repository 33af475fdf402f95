package config

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                         string
	MongoURI                     string
	MongoDatabase                string
	SubmissionCollection         string
	LocationCollection           string
	FailedNotificationCollection string
	Timeout                      time.Duration
	Timezone                     string
	ServerLog                    *logrus.Logger
	CacheTTL                     time.Duration
	JWTConfigs                   []JWTConfig
	JWTAudience                  string
	MessengerEndpoint            string
	MessengerDestination         string
	MessengerTimeout             time.Duration
	AdminDashboardURL            string
	AllowedOrigins               []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	logger := newLogger()

	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	cacheTTL := 5 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("DASHBOARD_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		}
	}

	messengerEndpoint := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_URL"))
	if messengerEndpoint == "" {
		messengerEndpoint = "http://messenger-gateway:3000"
	}

	messengerDestination := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_DESTINATION"))
	if messengerDestination == "" {
		messengerDestination = "quality-alerts"
	}

	messengerTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			messengerTimeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})
	adminDashboardURL := strings.TrimSpace(os.Getenv("ADMIN_DASHBOARD_BASE_URL"))

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_ADMIN_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_ADMIN_JWT_ISSUER", "careloop-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_SSO_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_SSO_JWT_ISSUER", "hospital-sso"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		logger.Fatal("JWT secrets not configured. Set AUTH_ADMIN_JWT_SECRET or AUTH_SSO_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "patient-survey"),
		SubmissionCollection:         envOrDefault("SUBMISSION_COLLECTION", "submissions"),
		LocationCollection:           envOrDefault("LOCATION_COLLECTION", "locations"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		Timezone:                     envOrDefault("TIMEZONE", "Africa/Lagos"),
		ServerLog:                    logger,
		CacheTTL:                     cacheTTL,
		JWTConfigs:                   jwtConfigs,
		JWTAudience:                  jwtAudience,
		MessengerEndpoint:            messengerEndpoint,
		MessengerDestination:         messengerDestination,
		MessengerTimeout:             messengerTimeout,
		AdminDashboardURL:            adminDashboardURL,
		AllowedOrigins:               allowedOrigins,
	}

	logger.WithFields(logrus.Fields{
		"addr":              cfg.Addr,
		"database":          cfg.MongoDatabase,
		"cacheTTL":          cfg.CacheTTL.String(),
		"messengerEndpoint": cfg.MessengerEndpoint,
	}).Info("configuration loaded")

	return cfg
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(envOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
