package tournament

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/database"
)

// RegisterPlayer adds a player. Names need not be unique.
func (s *store) RegisterPlayer(ctx context.Context, name string) (err error) {
	defer func(start time.Time) { s.observe("register_player", start, err) }(time.Now())

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	if _, err = s.gw.Exec(ctx, "INSERT INTO players (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}

	s.metrics.IncPlayersRegistered()
	log.Info("Registered player", "name", name)
	return nil
}

// RegisterPlayerWithID adds a player under a fixed id.
func (s *store) RegisterPlayerWithID(ctx context.Context, id int64, name string) (err error) {
	defer func(start time.Time) { s.observe("register_player", start, err) }(time.Now())

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	err = s.gw.WithConn(ctx, func(conn *sql.Conn) error {
		dialect := s.gw.Dialect()
		if _, err := conn.ExecContext(ctx, dialect.Rebind("INSERT INTO players (id, name) VALUES (?, ?)"), id, name); err != nil {
			return err
		}
		if dialect == database.DialectPostgres {
			// Keep the serial ahead of explicitly chosen ids.
			_, err := conn.ExecContext(ctx, "SELECT setval(pg_get_serial_sequence('players', 'id'), (SELECT MAX(id) FROM players))")
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to register player %d: %w", id, err)
	}

	s.metrics.IncPlayersRegistered()
	log.Info("Registered player", "id", id, "name", name)
	return nil
}

// CountPlayers returns the number of registered players.
func (s *store) CountPlayers(ctx context.Context) (count int, err error) {
	defer func(start time.Time) { s.observe("count_players", start, err) }(time.Now())

	if err = s.gw.QueryRow(ctx, "SELECT COUNT(*) FROM players", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

// DeletePlayers removes every player. It fails while matches still reference them.
func (s *store) DeletePlayers(ctx context.Context) (err error) {
	defer func(start time.Time) { s.observe("delete_players", start, err) }(time.Now())

	result, err := s.gw.Exec(ctx, "DELETE FROM players")
	if err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}

	if n, rerr := result.RowsAffected(); rerr == nil {
		log.Info("Deleted players", "count", n)
	}
	return nil
}

// ListPlayers returns every player ordered by id.
func (s *store) ListPlayers(ctx context.Context) (players []Player, err error) {
	defer func(start time.Time) { s.observe("list_players", start, err) }(time.Now())

	players = []Player{}
	err = s.gw.Query(ctx, "SELECT id, name FROM players ORDER BY id ASC", nil, func(rows *sql.Rows) error {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}
