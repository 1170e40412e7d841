package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/events"
	"github.com/gisqo-media/tracker/internal/http/middleware"
	"github.com/gisqo-media/tracker/internal/store"
)

// initial admin credentials, meant to be changed after first login
const (
	defaultAdminPassword = "admin123"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	env := LoadEnvironment()

	backend := selectStore(env)
	defer backend.Close()

	repo := store.NewRepository(backend)

	hashed, err := middleware.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("could not hash default admin password")
	}
	if err := repo.EnsureDefaultAdmin(context.Background(), hashed); err != nil {
		log.Fatal().Err(err).Msg("could not seed default admin account")
	}

	bus := events.NewBus()
	events.Wire(backend, bus)

	if env.MQTTBrokerURL != "" {
		publisher, err := events.NewMQTTPublisher(env.MQTTBrokerURL, "tracker-server")
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to mqtt broker")
		}
		publisher.Run(bus)
		defer publisher.Close()
	}

	assetStorage := selectStorage(env)

	r := gin.Default()
	RegisterRoutes(r, env, repo, assetStorage, bus)

	log.Info().Str("address", env.ServerAddress).Str("backend", env.StoreBackend).Msg("starting server")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
