package notifier

import "github.com/mauv0809/swiss-tournament/internal/tournament"

// Notifier defines a high-level interface for announcing tournament state.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For broadcasts to the tournament channel
	SendStandings(standings []tournament.Standing, dryRun bool) error
	SendPairings(round tournament.Round, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(standings []tournament.Standing) (any, error)
	FormatPairingsResponse(round tournament.Round) (any, error)
	FormatErrorResponse(message string) (any, error)
}
