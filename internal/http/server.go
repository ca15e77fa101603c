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

func NewServer(players club.ClubStore, att attendance.AttendanceStore, matches match.MatchStore, lc *lifecycle.Service, resolver *availability.Resolver, assigner *roster.Assigner, notifier notifier.Notifier, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Players:        players,
		Attendance:     att,
		Matches:        matches,
		Lifecycle:      lc,
		Resolver:       resolver,
		Assigner:       assigner,
		Notifier:       notifier,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/available-players", Chain(s.AvailablePlayersHandler(), paramsMiddleware))
	s.Router.Handle("/rankings", Chain(s.RankingsHandler(), paramsMiddleware))
	s.Router.Handle("/notify-rankings", Chain(s.NotifyRankingsHandler(), paramsMiddleware))
	s.Router.Handle("/attendance", Chain(s.AttendanceHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/create", Chain(s.CreateMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/custom", Chain(s.CreateCustomMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/start", Chain(s.StartMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/cancel", Chain(s.CancelMatchHandler(), paramsMiddleware))
	s.Router.Handle("/matches/finish", Chain(s.FinishMatchHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
