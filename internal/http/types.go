package http

import (
	"net/http"

	"github.com/mkrogh/shuttletrack/internal/attendance"
	"github.com/mkrogh/shuttletrack/internal/availability"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/config"
	"github.com/mkrogh/shuttletrack/internal/lifecycle"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/metrics"
	"github.com/mkrogh/shuttletrack/internal/notifier"
	"github.com/mkrogh/shuttletrack/internal/roster"
)

type Server struct {
	Players        club.ClubStore
	Attendance     attendance.AttendanceStore
	Matches        match.MatchStore
	Lifecycle      *lifecycle.Service
	Resolver       *availability.Resolver
	Assigner       *roster.Assigner
	Notifier       notifier.Notifier
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// createMixedRequest is the payload for the standard mixed-doubles flow.
// Slots left blank with random=true are filled from the same-gender
// available pool for the given date.
type createMixedRequest struct {
	Date     string              `json:"date"`
	GameType string              `json:"game_type"`
	Slots    roster.MixedRequest `json:"slots"`
}

// createCustomRequest is the payload for the custom flow: all four slots
// manual, no gender partitioning.
type createCustomRequest struct {
	Date         string `json:"date"`
	GameType     string `json:"game_type"`
	Team1PlayerA string `json:"team1_player_a"`
	Team1PlayerB string `json:"team1_player_b"`
	Team2PlayerA string `json:"team2_player_a"`
	Team2PlayerB string `json:"team2_player_b"`
}

type finishMatchRequest struct {
	MatchID    string `json:"match_id"`
	WinnerTeam string `json:"winner_team"`
	Score      string `json:"score"`
}

type putAttendanceRequest struct {
	Date    string   `json:"date"`
	Present []string `json:"present"`
}
