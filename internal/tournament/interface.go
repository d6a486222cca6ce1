package tournament

import "context"

// TournamentStore manages the roster and match history and derives standings
// and pairings from them.
type TournamentStore interface {
	RegisterPlayer(ctx context.Context, name string) error
	// RegisterPlayerWithID inserts a player under a caller-chosen id. Used for seeding.
	RegisterPlayerWithID(ctx context.Context, id int64, name string) error
	CountPlayers(ctx context.Context) (int, error)
	DeletePlayers(ctx context.Context) error
	ListPlayers(ctx context.Context) ([]Player, error)

	ReportMatch(ctx context.Context, winnerID, loserID int64) error
	DeleteMatches(ctx context.Context) error
	ListMatches(ctx context.Context) ([]Match, error)

	PlayerStandings(ctx context.Context) ([]Standing, error)
	// SwissPairings pairs adjacent standings and fails on an odd roster.
	SwissPairings(ctx context.Context) ([]Pairing, error)
	// NextRound pairs adjacent standings using the configured odd player policy.
	NextRound(ctx context.Context) (Round, error)
}
