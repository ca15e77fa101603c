// Package ranking derives the club leaderboard from cumulative win/loss
// counters.
package ranking

import (
	"sort"

	"github.com/mkrogh/shuttletrack/internal/club"
)

// Entry is one leaderboard row.
type Entry struct {
	Player club.Player `json:"player"`
	Ratio  float64     `json:"ratio"`
}

// WinRatio computes wins / (wins + losses). A player with no completed
// matches uses a denominator of 1, so they sort below anyone with a positive
// ratio without dividing by zero.
func WinRatio(p club.Player) float64 {
	total := p.TotalMatches()
	if total == 0 {
		total = 1
	}
	return float64(p.Wins) / float64(total)
}

// Rank sorts players descending by win ratio. The sort is stable, so ties
// keep the input order (directory insertion order by convention).
func Rank(players []club.Player) []Entry {
	entries := make([]Entry, len(players))
	for i, p := range players {
		entries[i] = Entry{Player: p, Ratio: WinRatio(p)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ratio > entries[j].Ratio
	})
	return entries
}
