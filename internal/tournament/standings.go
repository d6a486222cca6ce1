package tournament

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Wins are counted per winner and joined onto total_matches so players
// without a single match still appear. Ties are broken by ascending id.
const standingsQuery = `
	SELECT t.id, t.name, COALESCE(w.wins, 0) AS wins, t.matches
	FROM total_matches t
	LEFT JOIN (
		SELECT winner, COUNT(*) AS wins
		FROM matches
		GROUP BY winner
	) w ON w.winner = t.id
	ORDER BY wins DESC, t.id ASC
`

// PlayerStandings returns every player's record, best first.
func (s *store) PlayerStandings(ctx context.Context) (standings []Standing, err error) {
	defer func(start time.Time) { s.observe("player_standings", start, err) }(time.Now())

	standings = []Standing{}
	err = s.gw.Query(ctx, standingsQuery, nil, func(rows *sql.Rows) error {
		var st Standing
		if err := rows.Scan(&st.ID, &st.Name, &st.Wins, &st.Matches); err != nil {
			return fmt.Errorf("failed to scan standing row: %w", err)
		}
		standings = append(standings, st)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute standings: %w", err)
	}

	log.Debug("Computed standings", "players", len(standings))
	return standings, nil
}
