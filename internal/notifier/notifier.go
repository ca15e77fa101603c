package notifier

import (
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/ranking"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly scheduled matches
	SendMatchScheduled(m *match.Match, players []club.Player, dryRun bool) error
	// For recorded results
	SendMatchResult(m *match.Match, dryRun bool) error
	// For the leaderboard
	SendRankings(entries []ranking.Entry, dryRun bool) error
}
