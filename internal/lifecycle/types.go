package lifecycle

import (
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/metrics"
	"github.com/mkrogh/shuttletrack/internal/notifier"
	"github.com/mkrogh/shuttletrack/internal/pubsub"
)

// Service owns match records and their state transitions. All lifecycle
// mutations go through it; stores are never driven directly by handlers.
type Service struct {
	matches  match.MatchStore
	players  club.ClubStore
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
}
