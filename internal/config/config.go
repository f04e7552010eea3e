package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type HTTP struct {
	Port string
}

type Auth struct {
	TokenSecret string
}

type Config struct {
	Postgres Postgres
	HTTP     HTTP
	Auth     Auth
}

// Load reads configuration from the environment, preloading a .env
// file when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Postgres: Postgres{
			Host:     envOr("POSTGRES_HOST", "localhost"),
			Port:     envOr("POSTGRES_PORT", "5432"),
			User:     envOr("POSTGRES_USER", "postgres"),
			Password: envOr("POSTGRES_PASSWORD", "postgres"),
			DBName:   envOr("POSTGRES_DB", "movierama"),
			SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),
		},
		HTTP: HTTP{
			Port: envOr("HTTP_PORT", "8080"),
		},
		Auth: Auth{
			TokenSecret: envOr("TOKEN_SECRET", "dev-secret"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
