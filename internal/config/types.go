package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DB              DBConfig
	Port            string
	OddPlayerPolicy string
	Slack           SlackConfig
	ProjectID       string
}

// DBConfig selects the relational store. Name is a file path for sqlite3,
// a DSN for postgres, and unused for libsql (Turso holds the remote URL).
type DBConfig struct {
	Driver         string
	Name           string
	ConnectTimeout time.Duration
	Turso          TursoConfig
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
