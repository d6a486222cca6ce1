package tournament

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the TournamentStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	RegisterPlayerFunc       func(ctx context.Context, name string) error
	RegisterPlayerWithIDFunc func(ctx context.Context, id int64, name string) error
	CountPlayersFunc         func(ctx context.Context) (int, error)
	DeletePlayersFunc        func(ctx context.Context) error
	ListPlayersFunc          func(ctx context.Context) ([]Player, error)
	ReportMatchFunc          func(ctx context.Context, winnerID, loserID int64) error
	DeleteMatchesFunc        func(ctx context.Context) error
	ListMatchesFunc          func(ctx context.Context) ([]Match, error)
	PlayerStandingsFunc      func(ctx context.Context) ([]Standing, error)
	SwissPairingsFunc        func(ctx context.Context) ([]Pairing, error)
	NextRoundFunc            func(ctx context.Context) (Round, error)

	// Call records
	RegisterPlayerCalls []string
	ReportMatchCalls    []Match
	DeletePlayersCalls  int
	DeleteMatchesCalls  int
}

var _ TournamentStore = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) RegisterPlayer(ctx context.Context, name string) error {
	m.mu.Lock()
	m.RegisterPlayerCalls = append(m.RegisterPlayerCalls, name)
	m.mu.Unlock()
	if m.RegisterPlayerFunc != nil {
		return m.RegisterPlayerFunc(ctx, name)
	}
	return nil
}

func (m *MockStore) RegisterPlayerWithID(ctx context.Context, id int64, name string) error {
	m.mu.Lock()
	m.RegisterPlayerCalls = append(m.RegisterPlayerCalls, name)
	m.mu.Unlock()
	if m.RegisterPlayerWithIDFunc != nil {
		return m.RegisterPlayerWithIDFunc(ctx, id, name)
	}
	return nil
}

func (m *MockStore) CountPlayers(ctx context.Context) (int, error) {
	if m.CountPlayersFunc != nil {
		return m.CountPlayersFunc(ctx)
	}
	return 0, nil
}

func (m *MockStore) DeletePlayers(ctx context.Context) error {
	m.mu.Lock()
	m.DeletePlayersCalls++
	m.mu.Unlock()
	if m.DeletePlayersFunc != nil {
		return m.DeletePlayersFunc(ctx)
	}
	return nil
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockStore) ReportMatch(ctx context.Context, winnerID, loserID int64) error {
	m.mu.Lock()
	m.ReportMatchCalls = append(m.ReportMatchCalls, Match{Winner: winnerID, Loser: loserID})
	m.mu.Unlock()
	if m.ReportMatchFunc != nil {
		return m.ReportMatchFunc(ctx, winnerID, loserID)
	}
	return nil
}

func (m *MockStore) DeleteMatches(ctx context.Context) error {
	m.mu.Lock()
	m.DeleteMatchesCalls++
	m.mu.Unlock()
	if m.DeleteMatchesFunc != nil {
		return m.DeleteMatchesFunc(ctx)
	}
	return nil
}

func (m *MockStore) ListMatches(ctx context.Context) ([]Match, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return []Match{}, nil
}

func (m *MockStore) PlayerStandings(ctx context.Context) ([]Standing, error) {
	if m.PlayerStandingsFunc != nil {
		return m.PlayerStandingsFunc(ctx)
	}
	return []Standing{}, nil
}

func (m *MockStore) SwissPairings(ctx context.Context) ([]Pairing, error) {
	if m.SwissPairingsFunc != nil {
		return m.SwissPairingsFunc(ctx)
	}
	return []Pairing{}, nil
}

func (m *MockStore) NextRound(ctx context.Context) (Round, error) {
	if m.NextRoundFunc != nil {
		return m.NextRoundFunc(ctx)
	}
	return Round{Pairings: []Pairing{}}, nil
}
