package tournament

import (
	"time"

	"github.com/mauv0809/swiss-tournament/internal/database"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
)

// store implements TournamentStore on top of the database gateway.
type store struct {
	gw      *database.Gateway
	metrics metrics.Metrics
	policy  OddPlayerPolicy
}

// New creates a new TournamentStore.
func New(gw *database.Gateway, m metrics.Metrics, policy OddPlayerPolicy) TournamentStore {
	if policy == "" {
		policy = OddPlayerError
	}
	return &store{
		gw:      gw,
		metrics: m,
		policy:  policy,
	}
}

// observe records the duration and outcome of a store operation.
func (s *store) observe(operation string, start time.Time, err error) {
	s.metrics.ObserveStoreDuration(operation, time.Since(start).Seconds())
	if err != nil {
		s.metrics.IncStoreErrors(operation)
	}
}
