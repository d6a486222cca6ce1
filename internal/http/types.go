package http

import (
	"net/http"

	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

type Server struct {
	Store          tournament.TournamentStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	PubSub         pubsub.PubSubClient
	Router         *http.ServeMux
}

type registerPlayerRequest struct {
	Name string `json:"name"`
}

type reportMatchRequest struct {
	Winner int64 `json:"winner"`
	Loser  int64 `json:"loser"`
}

type countResponse struct {
	Count int `json:"count" msgpack:"count"`
}

type errorResponse struct {
	Error string `json:"error" msgpack:"error"`
}
