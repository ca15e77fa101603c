package match

import (
	"database/sql"
	"sync"
)

// store handles all database operations for matches.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

// Active reports whether the match still blocks its players from new
// assignments.
func (s Status) Active() bool {
	return s == StatusScheduled || s == StatusOngoing
}

// Team identifies one side of a doubles fixture.
type Team string

const (
	Team1 Team = "Team 1"
	Team2 Team = "Team 2"
)

// Roster holds the four player slots of a doubles match, two per team.
type Roster struct {
	Team1PlayerA string `json:"team1_player_a"`
	Team1PlayerB string `json:"team1_player_b"`
	Team2PlayerA string `json:"team2_player_a"`
	Team2PlayerB string `json:"team2_player_b"`
}

// Usernames returns the four slot-holders in slot order.
func (r Roster) Usernames() [4]string {
	return [4]string{r.Team1PlayerA, r.Team1PlayerB, r.Team2PlayerA, r.Team2PlayerB}
}

// Team returns the two usernames on the given side.
func (r Roster) Team(team Team) [2]string {
	if team == Team1 {
		return [2]string{r.Team1PlayerA, r.Team1PlayerB}
	}
	return [2]string{r.Team2PlayerA, r.Team2PlayerB}
}

// Distinct reports whether the four slot-holders are pairwise distinct and
// non-empty.
func (r Roster) Distinct() bool {
	seen := make(map[string]bool, 4)
	for _, u := range r.Usernames() {
		if u == "" || seen[u] {
			return false
		}
		seen[u] = true
	}
	return true
}

// Match is a doubles fixture. WinnerTeam, Score and Remark are unset until
// the match completes; they are written together with the status flip in a
// single transaction.
type Match struct {
	ID         string `json:"id"`
	Roster     Roster `json:"roster"`
	Date       string `json:"date"` // YYYY-MM-DD
	GameType   string `json:"game_type"`
	Status     Status `json:"status"`
	WinnerTeam Team   `json:"winner_team,omitempty"`
	Score      string `json:"score,omitempty"`
	Remark     string `json:"remark,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

// Filter narrows ListMatches. Zero values match everything.
type Filter struct {
	Status Status
	Date   string
	Player string
}
