package http

import (
	"net/http"

	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/notifier"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
)

func NewServer(store tournament.TournamentStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		PubSub:         pubsub,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("POST /players", Chain(s.RegisterPlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players/count", Chain(s.CountPlayersHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("DELETE /players", Chain(s.DeletePlayersHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("POST /matches", Chain(s.ReportMatchHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("DELETE /matches", Chain(s.DeleteMatchesHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("GET /standings", Chain(s.StandingsHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /pairings", Chain(s.PairingsHandler(), requestIDMiddleware, paramsMiddleware))

	verifySlack := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)
	s.Router.Handle("POST /slack/command/standings", Chain(s.StandingsCommandHandler(), requestIDMiddleware, paramsMiddleware, verifySlack))
	s.Router.Handle("POST /slack/command/pairings", Chain(s.PairingsCommandHandler(), requestIDMiddleware, paramsMiddleware, verifySlack))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
