package main

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mauv0809/swiss-tournament/internal/config"
	"github.com/mauv0809/swiss-tournament/internal/database"
	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) tournament.TournamentStore {
	t.Helper()
	gw, teardown, err := database.Connect(config.DBConfig{Driver: "sqlite3", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(teardown)
	return tournament.New(gw, metrics.NewMock(), tournament.OddPlayerError)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.RegisterPlayer(ctx, "Leftover"))

	matches, err := seed(ctx, store, roster, 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Len(t, matches, 50)

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, roster, players)

	for _, m := range matches {
		assert.NotEqual(t, m.Winner, m.Loser)
	}

	standings, err := store.PlayerStandings(ctx)
	require.NoError(t, err)
	totalWins, totalMatches := 0, 0
	for _, s := range standings {
		totalWins += s.Wins
		totalMatches += s.Matches
	}
	assert.Equal(t, 50, totalWins)
	assert.Equal(t, 100, totalMatches)
}

func TestSeed_IsRepeatable(t *testing.T) {
	ctx := context.Background()

	first, err := seed(ctx, newStore(t), roster, 20, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	second, err := seed(ctx, newStore(t), roster, 20, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeed_NeedsTwoPlayers(t *testing.T) {
	_, err := seed(context.Background(), newStore(t), roster[:1], 3, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
