package main

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/careloop/patient-survey-services/api/internal/config"
	"github.com/careloop/patient-survey-services/api/internal/server"
)

func main() {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		cfg.ServerLog.WithError(err).Fatal("could not create MongoDB client")
	}

	// The database container may still be warming up when we start, so ping
	// until it answers or the connect timeout runs out.
	ping := func() error {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer pingCancel()
		return client.Ping(pingCtx, readpref.Primary())
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(ping, policy); err != nil {
		cfg.ServerLog.WithError(err).Fatal("MongoDB did not become reachable")
	}

	app := server.New(cfg, client)
	if err := app.Run(); err != nil {
		cfg.ServerLog.WithError(err).Fatal("server failed to start")
	}
}
