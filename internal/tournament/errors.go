package tournament

import (
	"errors"

	"github.com/mauv0809/swiss-tournament/internal/database"
)

var (
	// ErrOddPlayerCount is returned when pairing an odd roster under OddPlayerError.
	ErrOddPlayerCount = errors.New("odd number of players")
	// ErrInvalidName is returned when registering a player without a name.
	ErrInvalidName = errors.New("player name must not be empty")

	ErrConnection           = database.ErrConnection
	ErrReferentialIntegrity = database.ErrReferentialIntegrity
)
