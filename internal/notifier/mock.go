package notifier

import (
	"sync"

	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendStandingsFunc           func(standings []tournament.Standing, dryRun bool) error
	SendPairingsFunc            func(round tournament.Round, dryRun bool) error
	FormatStandingsResponseFunc func(standings []tournament.Standing) (any, error)
	FormatPairingsResponseFunc  func(round tournament.Round) (any, error)
	FormatErrorResponseFunc     func(message string) (any, error)

	// Call records
	SendStandingsCalls []SendStandingsCall
	SendPairingsCalls  []SendPairingsCall
}

// SendStandingsCall holds the arguments for a call to SendStandings.
type SendStandingsCall struct {
	Standings []tournament.Standing
	DryRun    bool
}

// SendPairingsCall holds the arguments for a call to SendPairings.
type SendPairingsCall struct {
	Round  tournament.Round
	DryRun bool
}

var _ Notifier = (*MockNotifier)(nil)

// NewMock creates a new mock notifier.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendStandings(standings []tournament.Standing, dryRun bool) error {
	m.mu.Lock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, SendStandingsCall{Standings: standings, DryRun: dryRun})
	m.mu.Unlock()
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(standings, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendPairings(round tournament.Round, dryRun bool) error {
	m.mu.Lock()
	m.SendPairingsCalls = append(m.SendPairingsCalls, SendPairingsCall{Round: round, DryRun: dryRun})
	m.mu.Unlock()
	if m.SendPairingsFunc != nil {
		return m.SendPairingsFunc(round, dryRun)
	}
	return nil
}

func (m *MockNotifier) FormatStandingsResponse(standings []tournament.Standing) (any, error) {
	if m.FormatStandingsResponseFunc != nil {
		return m.FormatStandingsResponseFunc(standings)
	}
	return nil, nil
}

func (m *MockNotifier) FormatPairingsResponse(round tournament.Round) (any, error) {
	if m.FormatPairingsResponseFunc != nil {
		return m.FormatPairingsResponseFunc(round)
	}
	return nil, nil
}

func (m *MockNotifier) FormatErrorResponse(message string) (any, error) {
	if m.FormatErrorResponseFunc != nil {
		return m.FormatErrorResponseFunc(message)
	}
	return nil, nil
}
