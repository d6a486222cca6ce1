package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mauv0809/swiss-tournament/internal/config"
)

// Gateway executes statements against the store. Every call acquires its own
// connection and releases it before returning.
type Gateway struct {
	db      *sql.DB
	dialect Dialect
}

// NewGateway wraps an initialized handle.
func NewGateway(db *sql.DB, dialect Dialect) *Gateway {
	return &Gateway{
		db:      db,
		dialect: dialect,
	}
}

// Connect initializes the configured store and wraps it in a Gateway.
func Connect(cfg config.DBConfig) (*Gateway, func(), error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, nil, err
	}
	db, teardown, err := InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewGateway(db, dialect), teardown, nil
}

// Dialect reports the SQL flavour of the wrapped store.
func (g *Gateway) Dialect() Dialect {
	return g.dialect
}

// WithConn runs fn on a dedicated connection. The connection is returned to
// the pool on every exit path and errors are classified.
func (g *Gateway) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return Classify(fmt.Errorf("%w: failed to acquire connection: %w", ErrConnection, err))
	}
	defer conn.Close()

	return Classify(fn(conn))
}

// Exec runs a single statement.
func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	err := g.WithConn(ctx, func(conn *sql.Conn) error {
		var err error
		result, err = conn.ExecContext(ctx, g.dialect.Rebind(query), args...)
		return err
	})
	return result, err
}

// QueryRow runs a query expected to return one row and scans it into dest.
func (g *Gateway) QueryRow(ctx context.Context, query string, args []any, dest ...any) error {
	return g.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, g.dialect.Rebind(query), args...).Scan(dest...)
	})
}

// Query runs a query and calls scan once per row.
func (g *Gateway) Query(ctx context.Context, query string, args []any, scan func(rows *sql.Rows) error) error {
	return g.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, g.dialect.Rebind(query), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := scan(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}
