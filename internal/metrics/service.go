package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_matches_created_total",
			Help: "The total number of matches created.",
		}),
		MatchesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_matches_completed_total",
			Help: "The total number of matches finished with a recorded result.",
		}),
		MatchesCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_matches_canceled_total",
			Help: "The total number of scheduled matches canceled.",
		}),
		AssignmentFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_assignment_failures_total",
			Help: "The total number of partner assignment requests that failed.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "club_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "club_availability_resolve_duration_seconds",
			Help:    "The duration of availability resolution.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "club_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesCreated,
		s.MatchesCompleted,
		s.MatchesCanceled,
		s.AssignmentFailures,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.ResolveDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesCreated() {
	s.MatchesCreated.Inc()
}

func (s *Service) IncMatchesCompleted() {
	s.MatchesCompleted.Inc()
}

func (s *Service) IncMatchesCanceled() {
	s.MatchesCanceled.Inc()
}

func (s *Service) IncAssignmentFailures() {
	s.AssignmentFailures.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) ObserveResolveDuration(duration float64) {
	s.ResolveDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
