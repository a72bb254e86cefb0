package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config is the full server configuration, read from the environment. A
// .env file is honored when present.
type Config struct {
	Addr      string
	JWTSecret string

	// Timezone decides which calendar day "today" is when resolving the
	// schedule. It is fixed per deployment; changing it moves the day
	// boundary and with it which question is active.
	Timezone *time.Location

	// The two roster participants of this deployment.
	FirstUserID  uuid.UUID
	SecondUserID uuid.UUID

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (p PostgresConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DBName)
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:      getEnv("CHECKIN_ADDR", "0.0.0.0:8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Postgres: PostgresConfig{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	tzName := getEnv("CHECKIN_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKIN_TIMEZONE %q: %w", tzName, err)
	}
	cfg.Timezone = loc

	cfg.FirstUserID, err = parseUserID("CHECKIN_FIRST_USER_ID")
	if err != nil {
		return nil, err
	}
	cfg.SecondUserID, err = parseUserID("CHECKIN_SECOND_USER_ID")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseUserID(key string) (uuid.UUID, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s is required", key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return id, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
