package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	StoreBackend   string
	SQLitePath     string
	DatabaseURL    string
	MigrationsPath string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string
	MQTTBrokerURL  string
	UseSpaces      bool
	SpacesEndpoint string
	SpacesRegion   string
	SpacesBucket   string
	SpacesCDNURL   string
	SpacesAccess   string
	SpacesSecret   string
}

// LoadEnvironment reads and validates env vars.
func LoadEnvironment() Environment {
	// .env is optional; real deployments inject the environment
	_ = godotenv.Load()

	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),
		SecretKey:     os.Getenv("JWT_SECRET"),

		StoreBackend: os.Getenv("STORE_BACKEND"),
		SQLitePath:   os.Getenv("SQLITE_PATH"),

		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		UseSpaces:      os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint: os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:   os.Getenv("SPACES_REGION"),
		SpacesBucket:   os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:   os.Getenv("SPACES_CDN_URL"),
		SpacesAccess:   os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecret:   os.Getenv("SPACES_SECRET_KEY"),
	}

	if env.SecretKey == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.StoreBackend == "" {
		env.StoreBackend = "sqlite"
	}
	if env.SQLitePath == "" {
		env.SQLitePath = "./tracker.db"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}

	return env
}
