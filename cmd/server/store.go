package main

import (
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/storage"
	"github.com/gisqo-media/tracker/internal/store"
)

// selectStore picks the persistence backend. All three expose the same
// contract; the business rules never know which one is behind them.
func selectStore(env Environment) store.Store {
	switch env.StoreBackend {
	case "sqlite":
		s, err := store.NewSQLite(env.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("sqlite store init")
		}
		return s
	case "redis":
		if env.RedisAddress == "" {
			log.Fatal().Msg("REDIS_ADDRESS is required for the redis backend")
		}
		s, err := store.NewRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("redis store init")
		}
		return s
	case "postgres":
		if env.DatabaseURL == "" {
			log.Fatal().Msg("DATABASE_URL is required for the postgres backend")
		}
		s, err := store.NewPostgres(env.DatabaseURL, env.MigrationsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres store init")
		}
		return s
	default:
		log.Fatal().Str("backend", env.StoreBackend).Msg("unknown store backend")
		return nil
	}
}

// selectStorage picks where uploaded branding assets land.
func selectStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		s, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccess,
			env.SpacesSecret,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("spaces storage init")
		}
		return s
	}
	return storage.NewLocalStorage("./uploads")
}
