package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

const defaultConnectTimeout = 5 * time.Second

// InitDB opens the configured store, verifies it is reachable and brings the
// schema up to date. The returned teardown closes the handle.
func InitDB(cfg config.DBConfig) (*sql.DB, func(), error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, nil, err
	}

	driverName, dsn, err := dataSource(dialect, cfg)
	if err != nil {
		return nil, nil, err
	}

	log.Info("Initializing database", "driver", driverName, "dialect", dialect)
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to open database: %w", ErrConnection, err)
	}
	if dialect == DialectSQLite {
		// Single writer. Also keeps every statement on the same :memory: database.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		db.Close() // Close on error
		return nil, nil, fmt.Errorf("%w: failed to ping database within %v: %w", ErrConnection, timeout, err)
	}

	if err = migrate(db, dialect); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func dataSource(dialect Dialect, cfg config.DBConfig) (string, string, error) {
	switch dialect {
	case DialectTurso:
		if cfg.Turso.PrimaryURL == "" {
			return "", "", fmt.Errorf("libsql driver requires TURSO_PRIMARY_URL")
		}
		dsn := cfg.Turso.PrimaryURL
		if cfg.Turso.AuthToken != "" {
			dsn += "?authToken=" + cfg.Turso.AuthToken
		}
		return DriverLibSQL, dsn, nil
	case DialectPostgres:
		return DriverPostgres, cfg.Name, nil
	default:
		if cfg.Name == "" {
			return "", "", fmt.Errorf("sqlite3 driver requires a database path")
		}
		// Foreign key support is not enabled by default in SQLite
		return DriverSQLite, cfg.Name + "?_foreign_keys=on", nil
	}
}

func migrate(db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.Default())
	if err := goose.SetDialect(string(dialect)); err != nil {
		return err
	}
	return goose.Up(db, dialect.migrationsDir())
}
