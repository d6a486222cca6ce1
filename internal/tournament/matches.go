package tournament

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// ReportMatch records the outcome of a single match. Both ids must belong to
// registered players.
func (s *store) ReportMatch(ctx context.Context, winnerID, loserID int64) (err error) {
	defer func(start time.Time) { s.observe("report_match", start, err) }(time.Now())

	if _, err = s.gw.Exec(ctx, "INSERT INTO matches (winner, loser) VALUES (?, ?)", winnerID, loserID); err != nil {
		return fmt.Errorf("failed to report match %d vs %d: %w", winnerID, loserID, err)
	}

	s.metrics.IncMatchesReported()
	log.Info("Reported match", "winner", winnerID, "loser", loserID)
	return nil
}

// DeleteMatches removes every match record.
func (s *store) DeleteMatches(ctx context.Context) (err error) {
	defer func(start time.Time) { s.observe("delete_matches", start, err) }(time.Now())

	result, err := s.gw.Exec(ctx, "DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}

	if n, rerr := result.RowsAffected(); rerr == nil {
		log.Info("Deleted matches", "count", n)
	}
	return nil
}

// ListMatches returns every match in the order it was reported.
func (s *store) ListMatches(ctx context.Context) (matches []Match, err error) {
	defer func(start time.Time) { s.observe("list_matches", start, err) }(time.Now())

	matches = []Match{}
	err = s.gw.Query(ctx, "SELECT id, winner, loser FROM matches ORDER BY id ASC", nil, func(rows *sql.Rows) error {
		var m Match
		if err := rows.Scan(&m.ID, &m.Winner, &m.Loser); err != nil {
			return fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}
