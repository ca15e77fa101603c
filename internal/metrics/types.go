package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed implementation of Metrics.
type Service struct {
	MatchesCreated     prometheus.Counter
	MatchesCompleted   prometheus.Counter
	MatchesCanceled    prometheus.Counter
	AssignmentFailures prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	ResolveDuration    prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
