package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultDriver         = "sqlite3"
	defaultPort           = "8080"
	defaultOddPolicy      = "error"
	defaultConnectTimeout = 5 * time.Second
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DB: DBConfig{
			Driver:         getEnvOrDefault("DB_DRIVER", defaultDriver),
			Name:           getEnv("DB_NAME"),
			ConnectTimeout: getDurationOrDefault("DB_CONNECT_TIMEOUT", defaultConnectTimeout),
			Turso: TursoConfig{
				PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
				AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
			},
		},
		Port:            getEnvOrDefault("PORT", defaultPort),
		OddPlayerPolicy: getEnvOrDefault("ODD_PLAYER_POLICY", defaultOddPolicy),
		Slack: SlackConfig{
			Token:         os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:     os.Getenv("SLACK_CHANNEL_ID"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationOrDefault(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn("Invalid duration, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}
