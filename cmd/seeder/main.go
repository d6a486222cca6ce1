package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/database"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var roster = []tournament.Player{
	{ID: 1, Name: "Jeff"},
	{ID: 2, Name: "Adash"},
	{ID: 3, Name: "Amanda"},
	{ID: 4, Name: "Eduardo"},
	{ID: 5, Name: "Philip"},
	{ID: 6, Name: "Jee"},
}

var (
	numMatches int
	seedValue  int64
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Reset the tournament and fill it with random results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info("Starting database seeder...")
		cfg := config.Load()

		gw, teardown, err := database.Connect(cfg.DB)
		if err != nil {
			return err
		}
		defer teardown()

		if !cmd.Flags().Changed("seed") {
			seedValue = time.Now().UnixNano()
		}
		log.Info("Seeding tournament", "matches", numMatches, "seed", seedValue)

		store := tournament.New(gw, metrics.NewService(prometheus.NewRegistry()), tournament.OddPlayerError)
		startTime := time.Now()
		matches, err := seed(cmd.Context(), store, roster, numMatches, rand.New(rand.NewSource(seedValue)))
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (id=%d) beat %s (id=%d)\n", nameOf(m.Winner), m.Winner, nameOf(m.Loser), m.Loser)
		}
		log.Info("Successfully seeded tournament", "players", len(roster), "matches", len(matches), "duration", time.Since(startTime))
		return nil
	},
}

// seed wipes the tournament, registers players with their fixed ids and
// records n random results between distinct players.
func seed(ctx context.Context, store tournament.TournamentStore, players []tournament.Player, n int, rng *rand.Rand) ([]tournament.Match, error) {
	if len(players) < 2 && n > 0 {
		return nil, fmt.Errorf("need at least 2 players to record matches, got %d", len(players))
	}

	if err := store.DeleteMatches(ctx); err != nil {
		return nil, err
	}
	if err := store.DeletePlayers(ctx); err != nil {
		return nil, err
	}
	for _, p := range players {
		if err := store.RegisterPlayerWithID(ctx, p.ID, p.Name); err != nil {
			return nil, fmt.Errorf("failed to register player %s: %w", p.Name, err)
		}
	}
	log.Info("Registered roster", "players", len(players))

	matches := make([]tournament.Match, 0, n)
	for i := 0; i < n; i++ {
		winner := rng.Intn(len(players))
		loser := rng.Intn(len(players))
		if loser == winner {
			loser = (winner + 1) % len(players)
		}
		m := tournament.Match{Winner: players[winner].ID, Loser: players[loser].ID}
		if err := store.ReportMatch(ctx, m.Winner, m.Loser); err != nil {
			return nil, fmt.Errorf("failed to report match %d: %w", i+1, err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func nameOf(id int64) string {
	for _, p := range roster {
		if p.ID == id {
			return p.Name
		}
	}
	return "unknown"
}

func init() {
	rootCmd.Flags().IntVar(&numMatches, "matches", 100, "Number of random matches to record")
	rootCmd.Flags().Int64Var(&seedValue, "seed", 0, "Random seed (defaults to the current time)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Seeder failed", "error", err)
		os.Exit(1)
	}
}
