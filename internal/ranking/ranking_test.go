package ranking_test

import (
	"testing"

	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinRatio(t *testing.T) {
	assert.Equal(t, 0.75, ranking.WinRatio(club.Player{Wins: 3, Losses: 1}))
	assert.Equal(t, 1.0, ranking.WinRatio(club.Player{Wins: 5, Losses: 0}))
	assert.Equal(t, 0.0, ranking.WinRatio(club.Player{Wins: 0, Losses: 3}))
	// No completed matches must not divide by zero.
	assert.Equal(t, 0.0, ranking.WinRatio(club.Player{}))
}

func TestRank(t *testing.T) {
	players := []club.Player{
		{Username: "rookie"},
		{Username: "strong", Wins: 5},
		{Username: "losing", Losses: 3},
		{Username: "even", Wins: 2, Losses: 2},
	}

	entries := ranking.Rank(players)
	require.Len(t, entries, 4)

	assert.Equal(t, "strong", entries[0].Player.Username)
	assert.Equal(t, 1.0, entries[0].Ratio)
	assert.Equal(t, "even", entries[1].Player.Username)

	// rookie (0/0) and losing (0/3) both sit at ratio 0 and keep their
	// directory order.
	assert.Equal(t, "rookie", entries[2].Player.Username)
	assert.Equal(t, "losing", entries[3].Player.Username)
}

func TestRank_EmptyDirectory(t *testing.T) {
	entries := ranking.Rank(nil)
	assert.Empty(t, entries)
}
