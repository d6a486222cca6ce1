package tournament

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Pair splits ranked standings into consecutive pairs: first with second,
// third with fourth and so on. Previous opponents are not considered.
// An odd roster either fails with ErrOddPlayerCount or, under OddPlayerBye,
// sits out the last-ranked player.
func Pair(standings []Standing, policy OddPlayerPolicy) (Round, error) {
	ranked := standings
	round := Round{Pairings: make([]Pairing, 0, len(ranked)/2)}

	if len(ranked)%2 != 0 {
		if policy != OddPlayerBye {
			return Round{}, fmt.Errorf("%w: cannot pair %d players", ErrOddPlayerCount, len(ranked))
		}
		last := ranked[len(ranked)-1]
		round.Bye = &Player{ID: last.ID, Name: last.Name}
		ranked = ranked[:len(ranked)-1]
	}

	for i := 0; i+1 < len(ranked); i += 2 {
		round.Pairings = append(round.Pairings, Pairing{
			ID1:   ranked[i].ID,
			Name1: ranked[i].Name,
			ID2:   ranked[i+1].ID,
			Name2: ranked[i+1].Name,
		})
	}
	return round, nil
}

// SwissPairings returns the pairs for the next round.
func (s *store) SwissPairings(ctx context.Context) ([]Pairing, error) {
	round, err := s.pairRound(ctx, OddPlayerError)
	if err != nil {
		return nil, err
	}
	return round.Pairings, nil
}

// NextRound returns the pairs for the next round, applying the store's odd player policy.
func (s *store) NextRound(ctx context.Context) (Round, error) {
	return s.pairRound(ctx, s.policy)
}

func (s *store) pairRound(ctx context.Context, policy OddPlayerPolicy) (Round, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return Round{}, err
	}

	round, err := Pair(standings, policy)
	if err != nil {
		log.Warn("Could not pair round", "players", len(standings), "policy", policy, "error", err)
		return Round{}, err
	}

	s.metrics.IncRoundsPaired()
	if round.Bye != nil {
		log.Info("Paired round", "pairs", len(round.Pairings), "bye", round.Bye.Name)
	} else {
		log.Info("Paired round", "pairs", len(round.Pairings))
	}
	return round, nil
}
