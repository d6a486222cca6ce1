package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrConnection reports that the store could not be reached or refused the credentials.
	ErrConnection = errors.New("store connection failed")
	// ErrReferentialIntegrity reports a foreign-key, uniqueness or check constraint violation.
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// Classify wraps a driver error in the matching sentinel so callers can use
// errors.Is regardless of which driver produced it. Unknown errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConnection) || errors.Is(err, ErrReferentialIntegrity) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return fmt.Errorf("%w: %w", ErrReferentialIntegrity, err)
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrAuth:
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23": // integrity_constraint_violation
			return fmt.Errorf("%w: %w", ErrReferentialIntegrity, err)
		case "08", "28": // connection_exception, invalid_authorization_specification
			return fmt.Errorf("%w: %w", ErrConnection, err)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	// libsql remote errors only carry the sqlite message text.
	if strings.Contains(err.Error(), "SQLITE_CONSTRAINT") || strings.Contains(err.Error(), "constraint failed") {
		return fmt.Errorf("%w: %w", ErrReferentialIntegrity, err)
	}
	return err
}
