package notifier

import (
	"sync"

	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/ranking"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
type MockNotifier struct {
	mu sync.Mutex

	SendMatchScheduledFunc func(m *match.Match, players []club.Player, dryRun bool) error
	SendMatchResultFunc    func(m *match.Match, dryRun bool) error
	SendRankingsFunc       func(entries []ranking.Entry, dryRun bool) error

	MatchScheduledCalls []*match.Match
	MatchResultCalls    []*match.Match
	RankingsCalls       [][]ranking.Entry
}

var _ Notifier = (*MockNotifier)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (n *MockNotifier) SendMatchScheduled(m *match.Match, players []club.Player, dryRun bool) error {
	n.mu.Lock()
	n.MatchScheduledCalls = append(n.MatchScheduledCalls, m)
	n.mu.Unlock()
	if n.SendMatchScheduledFunc != nil {
		return n.SendMatchScheduledFunc(m, players, dryRun)
	}
	return nil
}

func (n *MockNotifier) SendMatchResult(m *match.Match, dryRun bool) error {
	n.mu.Lock()
	n.MatchResultCalls = append(n.MatchResultCalls, m)
	n.mu.Unlock()
	if n.SendMatchResultFunc != nil {
		return n.SendMatchResultFunc(m, dryRun)
	}
	return nil
}

func (n *MockNotifier) SendRankings(entries []ranking.Entry, dryRun bool) error {
	n.mu.Lock()
	n.RankingsCalls = append(n.RankingsCalls, entries)
	n.mu.Unlock()
	if n.SendRankingsFunc != nil {
		return n.SendRankingsFunc(entries, dryRun)
	}
	return nil
}
