package club

import "errors"

// ErrNotFound is returned when a username does not exist in the directory.
var ErrNotFound = errors.New("player not found")

// ClubStore defines the interface for interacting with the player directory.
// Win/loss counters are owned by the match finish transaction and are
// read-only through this interface.
type ClubStore interface {
	UpsertPlayer(player Player) error
	GetPlayer(username string) (*Player, error)
	GetAllPlayers() ([]Player, error)
	GetPlayers(usernames []string) ([]Player, error)
	IsKnownPlayer(username string) bool
}
