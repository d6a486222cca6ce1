package tournament

import (
	"fmt"
	"strings"
)

// Player is a registered participant. The id is assigned by the store.
type Player struct {
	ID   int64  `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

// Match is an append-only record of one result.
type Match struct {
	ID     int64 `json:"id" msgpack:"id"`
	Winner int64 `json:"winner" msgpack:"winner"`
	Loser  int64 `json:"loser" msgpack:"loser"`
}

// Standing is one player's derived record. It is never persisted.
type Standing struct {
	ID      int64  `json:"id" msgpack:"id"`
	Name    string `json:"name" msgpack:"name"`
	Wins    int    `json:"wins" msgpack:"wins"`
	Matches int    `json:"matches" msgpack:"matches"`
}

// Pairing matches two adjacent players in the standings for the next round.
type Pairing struct {
	ID1   int64  `json:"id1" msgpack:"id1"`
	Name1 string `json:"name1" msgpack:"name1"`
	ID2   int64  `json:"id2" msgpack:"id2"`
	Name2 string `json:"name2" msgpack:"name2"`
}

// Round is the full outcome of pairing: the pairs plus the player sitting out, if any.
type Round struct {
	Pairings []Pairing `json:"pairings" msgpack:"pairings"`
	Bye      *Player   `json:"bye,omitempty" msgpack:"bye,omitempty"`
}

// OddPlayerPolicy decides what happens when the roster cannot be split into pairs.
type OddPlayerPolicy string

const (
	// OddPlayerError refuses to pair an odd roster.
	OddPlayerError OddPlayerPolicy = "error"
	// OddPlayerBye sits out the lowest-ranked player.
	OddPlayerBye OddPlayerPolicy = "bye"
)

// ParseOddPlayerPolicy accepts "error" (the default when empty) or "bye".
func ParseOddPlayerPolicy(s string) (OddPlayerPolicy, error) {
	switch OddPlayerPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", OddPlayerError:
		return OddPlayerError, nil
	case OddPlayerBye:
		return OddPlayerBye, nil
	default:
		return "", fmt.Errorf("unknown odd player policy %q", s)
	}
}
