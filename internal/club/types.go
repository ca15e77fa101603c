package club

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the player directory.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Gender is the demographic attribute used to partition the mixed-doubles pools.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Player represents a registered club member. Wins and losses are cumulative
// counters that only ever grow, and only through a completed match.
type Player struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    Gender `json:"gender"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	CreatedAt int64  `json:"created_at"`
}

// TotalMatches returns the number of completed matches the player appeared in.
func (p Player) TotalMatches() int {
	return p.Wins + p.Losses
}
