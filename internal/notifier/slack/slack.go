package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/metrics"
	"github.com/mkrogh/shuttletrack/internal/notifier"
	"github.com/mkrogh/shuttletrack/internal/ranking"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendMatchScheduled announces a newly created match in the club channel.
func (s *Notifier) SendMatchScheduled(m *match.Match, players []club.Player, dryRun bool) error {
	msg := s.formatMatchScheduled(m, players)
	return s.sendMessage(msg, dryRun)
}

// SendMatchResult announces a recorded result in the club channel.
func (s *Notifier) SendMatchResult(m *match.Match, dryRun bool) error {
	msg := s.formatMatchResult(m)
	return s.sendMessage(msg, dryRun)
}

// SendRankings posts the current leaderboard.
func (s *Notifier) SendRankings(entries []ranking.Entry, dryRun bool) error {
	msg := s.formatRankings(entries)
	return s.sendMessage(msg, dryRun)
}

// formatMatchScheduled creates the Slack message for a new match using Block Kit.
func (s *Notifier) formatMatchScheduled(m *match.Match, players []club.Player) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏸 New match scheduled! 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("Date: %s\nGame type: %s", m.Date, m.GameType)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.Username] = p.Name
	}
	displayName := func(username string) string {
		if name, ok := names[username]; ok && name != "" {
			return name
		}
		return username
	}

	team1 := m.Roster.Team(match.Team1)
	team2 := m.Roster.Team(match.Team2)
	teamsText := fmt.Sprintf("Team 1: %s & %s\nTeam 2: %s & %s",
		displayName(team1[0]), displayName(team1[1]),
		displayName(team2[0]), displayName(team2[1]))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", teamsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatMatchResult creates the Slack message for a finished match using Block Kit.
func (s *Notifier) formatMatchResult(m *match.Match) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏸 Match finished! 🏸", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	winners := m.Roster.Team(m.WinnerTeam)
	resultText := fmt.Sprintf("%s wins: %s & %s\nScore: %s", m.WinnerTeam, winners[0], winners[1], m.Score)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))

	if m.Remark != "" {
		contextElement := slack.NewTextBlockObject("plain_text", m.Remark, true, false)
		blocks = append(blocks, slack.NewContextBlock("", contextElement))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatRankings creates the leaderboard message using Block Kit.
func (s *Notifier) formatRankings(entries []ranking.Entry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Club rankings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. *%s* %d W / %d L (%.2f)",
			i+1, e.Player.Name, e.Player.Wins, e.Player.Losses, e.Ratio))
	}
	if len(lines) == 0 {
		lines = append(lines, "No players registered yet.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
