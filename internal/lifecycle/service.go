package lifecycle

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/metrics"
	"github.com/mkrogh/shuttletrack/internal/notifier"
	"github.com/mkrogh/shuttletrack/internal/pubsub"
	"github.com/mkrogh/shuttletrack/internal/result"
)

// New creates a new lifecycle Service.
func New(matches match.MatchStore, players club.ClubStore, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Service {
	return &Service{
		matches:  matches,
		players:  players,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
	}
}

// CreateMatch validates the roster and schedules a new match with a fresh
// stable identifier. Roster invariants: four distinct usernames, all
// registered, none currently holding a slot in an active match.
func (s *Service) CreateMatch(roster match.Roster, date, gameType string) (*match.Match, error) {
	if !roster.Distinct() {
		return nil, fmt.Errorf("roster players must be distinct and set: %w", match.ErrRosterInvalid)
	}

	usernames := roster.Usernames()
	players, err := s.players.GetPlayers(usernames[:])
	if err != nil {
		return nil, fmt.Errorf("failed to look up roster players: %w", err)
	}
	if len(players) != 4 {
		return nil, fmt.Errorf("roster references unknown players: %w", match.ErrRosterInvalid)
	}

	active, err := s.matches.ActivePlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to look up active players: %w", err)
	}
	for _, u := range usernames {
		if active[u] {
			return nil, fmt.Errorf("player %s is already in an active match: %w", u, match.ErrRosterInvalid)
		}
	}

	m := &match.Match{
		ID:        uuid.New().String(),
		Roster:    roster,
		Date:      date,
		GameType:  gameType,
		Status:    match.StatusScheduled,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.matches.Insert(m); err != nil {
		return nil, err
	}
	s.metrics.IncMatchesCreated()

	if err := s.notifier.SendMatchScheduled(m, players, false); err != nil {
		log.Error("Failed to send match scheduled notification", "error", err, "matchID", m.ID)
	}
	if err := s.pubsub.SendMessage(string(pubsub.EventMatchScheduled), m); err != nil {
		log.Error("Failed to publish match scheduled event", "error", err, "matchID", m.ID)
	}

	log.Info("Match scheduled", "matchID", m.ID, "date", m.Date, "gameType", m.GameType)
	return m, nil
}

// StartMatch transitions a scheduled match to ongoing.
func (s *Service) StartMatch(id string) error {
	return s.matches.Transition(id, []match.Status{match.StatusScheduled}, match.StatusOngoing)
}

// CancelMatch cancels a scheduled match, freeing its players. A started
// match cannot be canceled, only finished.
func (s *Service) CancelMatch(id string) error {
	err := s.matches.Transition(id, []match.Status{match.StatusScheduled}, match.StatusCanceled)
	if err != nil {
		return err
	}
	s.metrics.IncMatchesCanceled()

	if err := s.pubsub.SendMessage(string(pubsub.EventMatchCanceled), id); err != nil {
		log.Error("Failed to publish match canceled event", "error", err, "matchID", id)
	}
	return nil
}

// FinishMatch records the result of a match. The match fields, the winners'
// win counters and the losers' loss counters are applied as one transaction.
// Finishing is legal from scheduled as well as ongoing: clubs often record a
// result for a match nobody remembered to start.
func (s *Service) FinishMatch(id string, winner match.Team, rawScore string) (*match.Match, error) {
	if winner != match.Team1 && winner != match.Team2 {
		return nil, fmt.Errorf("unknown winner team %q: %w", winner, match.ErrInvalidTransition)
	}

	m, err := s.matches.Get(id)
	if err != nil {
		return nil, err
	}
	if !m.Status.Active() {
		return nil, fmt.Errorf("match %s is %s: %w", id, m.Status, match.ErrInvalidTransition)
	}

	remark := result.ComputeRemark(rawScore)

	loser := match.Team2
	if winner == match.Team2 {
		loser = match.Team1
	}
	winners := m.Roster.Team(winner)
	losers := m.Roster.Team(loser)

	if err := s.matches.CompleteMatch(id, winner, rawScore, remark, winners, losers); err != nil {
		return nil, err
	}
	s.metrics.IncMatchesCompleted()

	m.Status = match.StatusCompleted
	m.WinnerTeam = winner
	m.Score = rawScore
	m.Remark = remark

	if err := s.notifier.SendMatchResult(m, false); err != nil {
		log.Error("Failed to send match result notification", "error", err, "matchID", id)
	}
	if err := s.pubsub.SendMessage(string(pubsub.EventMatchCompleted), m); err != nil {
		log.Error("Failed to publish match completed event", "error", err, "matchID", id)
	}

	return m, nil
}
