package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) RegisterPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := s.Store.RegisterPlayer(r.Context(), req.Name); err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, http.StatusCreated, req)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, players)
	}
}

func (s *Server) CountPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := s.Store.CountPlayers(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, countResponse{Count: count})
	}
}

func (s *Server) DeletePlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all players")
		if err := s.Store.DeletePlayers(r.Context()); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ReportMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Winner <= 0 || req.Loser <= 0 {
			http.Error(w, "winner and loser are required", http.StatusBadRequest)
			return
		}

		if err := s.Store.ReportMatch(r.Context(), req.Winner, req.Loser); err != nil {
			respondError(w, r, err)
			return
		}

		s.publish(pubsub.EventMatchReported, pubsub.MatchReportedEvent{
			Winner:     req.Winner,
			Loser:      req.Loser,
			ReportedAt: time.Now().UTC(),
		}, isDryRunFromContext(r))
		respond(w, r, http.StatusCreated, req)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.ListMatches(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, r, http.StatusOK, matches)
	}
}

func (s *Server) DeleteMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all matches")
		if err := s.Store.DeleteMatches(r.Context()); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Store.PlayerStandings(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		if r.URL.Query().Get("announce") == "true" {
			if err := s.Notifier.SendStandings(standings, isDryRunFromContext(r)); err != nil {
				log.Error("Failed to announce standings", "error", err)
			}
		}
		respond(w, r, http.StatusOK, standings)
	}
}

func (s *Server) PairingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)

		round, err := s.Store.NextRound(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		s.publish(pubsub.EventRoundPaired, pubsub.RoundPairedEvent{
			Round:    round,
			PairedAt: time.Now().UTC(),
		}, isDryRun)

		if r.URL.Query().Get("announce") == "true" {
			if err := s.Notifier.SendPairings(round, isDryRun); err != nil {
				log.Error("Failed to announce pairings", "error", err)
			}
		}
		respond(w, r, http.StatusOK, round)
	}
}

// StandingsCommandHandler returns a handler for the /standings Slack command.
func (s *Server) StandingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Store.PlayerStandings(r.Context())
		if err != nil {
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			log.Error("Failed to get standings from store", "error", err)
			return
		}

		msg, err := s.Notifier.FormatStandingsResponse(standings)
		if err != nil {
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			log.Error("Failed to format standings", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

// PairingsCommandHandler returns a handler for the /pairings Slack command.
func (s *Server) PairingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg any
		round, err := s.Store.NextRound(r.Context())
		switch {
		case err == nil:
			msg, err = s.Notifier.FormatPairingsResponse(round)
		case statusFor(err) < http.StatusInternalServerError:
			log.Warn("Cannot pair next round", "error", err)
			msg, err = s.Notifier.FormatErrorResponse(fmt.Sprintf("Cannot pair the next round: %s", err))
		default:
			http.Error(w, "Failed to pair next round", http.StatusInternalServerError)
			log.Error("Failed to pair next round", "error", err)
			return
		}

		if err != nil {
			http.Error(w, "Failed to format pairings", http.StatusInternalServerError)
			log.Error("Failed to format pairings", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

// publish sends an event. Failures are logged and never fail the request.
func (s *Server) publish(topic pubsub.EventType, event any, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would publish event", "topic", topic)
		return
	}
	if err := s.PubSub.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish event", "topic", topic, "error", err)
		return
	}
	s.Metrics.IncEventsPublished()
}
