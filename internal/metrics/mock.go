package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	playersRegistered int
	matchesReported   int
	roundsPaired      int
	storeDurations    map[string][]float64
	storeErrors       map[string]int
	slackNotifSent    int
	slackNotifFailed  int
	eventsPublished   int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		storeDurations: make(map[string][]float64),
		storeErrors:    make(map[string]int),
	}
}

func (m *Mock) IncPlayersRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersRegistered++
}

func (m *Mock) IncMatchesReported() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesReported++
}

func (m *Mock) IncRoundsPaired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsPaired++
}

func (m *Mock) ObserveStoreDuration(operation string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeDurations[operation] = append(m.storeDurations[operation], duration)
}

func (m *Mock) IncStoreErrors(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeErrors[operation]++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncEventsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsPublished++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PlayersRegistered returns the number of times IncPlayersRegistered was called.
func (m *Mock) PlayersRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersRegistered
}

// MatchesReported returns the number of times IncMatchesReported was called.
func (m *Mock) MatchesReported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesReported
}

// RoundsPaired returns the number of times IncRoundsPaired was called.
func (m *Mock) RoundsPaired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsPaired
}

// StoreCalls returns how many durations were observed for an operation.
func (m *Mock) StoreCalls(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.storeDurations[operation])
}

// StoreErrors returns the number of errors counted for an operation.
func (m *Mock) StoreErrors(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeErrors[operation]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// EventsPublished returns the number of times IncEventsPublished was called.
func (m *Mock) EventsPublished() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsPublished
}
