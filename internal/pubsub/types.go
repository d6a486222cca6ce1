package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

type client struct {
	client *pubsub.Client
}

// logClient encodes messages but only logs them. Used when no GCP project is configured.
type logClient struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchReported EventType = "match-reported"
	EventRoundPaired   EventType = "round-paired"
)

// MatchReportedEvent is published after a result is recorded.
type MatchReportedEvent struct {
	Winner     int64     `msgpack:"winner"`
	Loser      int64     `msgpack:"loser"`
	ReportedAt time.Time `msgpack:"reported_at"`
}

// RoundPairedEvent is published after pairings for the next round are produced.
type RoundPairedEvent struct {
	Round    tournament.Round `msgpack:"round"`
	PairedAt time.Time        `msgpack:"paired_at"`
}
