package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/lifecycle"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/metrics"
	"github.com/mkrogh/shuttletrack/internal/notifier"
	"github.com/mkrogh/shuttletrack/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deps struct {
	matches  *match.MockStore
	players  *club.MockStore
	notifier *notifier.MockNotifier
	metrics  *metrics.MockMetrics
	pubsub   *pubsub.MockPubSubClient
}

func newService() (*lifecycle.Service, *deps) {
	d := &deps{
		matches:  match.NewMock(),
		players:  club.NewMock(),
		notifier: notifier.NewMock(),
		metrics:  metrics.NewMock(),
		pubsub:   pubsub.NewMock("test-project"),
	}
	d.players.GetPlayersFunc = func(usernames []string) ([]club.Player, error) {
		players := make([]club.Player, len(usernames))
		for i, u := range usernames {
			players[i] = club.Player{Username: u}
		}
		return players, nil
	}
	return lifecycle.New(d.matches, d.players, d.notifier, d.metrics, d.pubsub), d
}

func testRoster() match.Roster {
	return match.Roster{
		Team1PlayerA: "m1",
		Team1PlayerB: "f1",
		Team2PlayerA: "m2",
		Team2PlayerB: "f2",
	}
}

func TestCreateMatch(t *testing.T) {
	svc, d := newService()

	m, err := svc.CreateMatch(testRoster(), "2025-06-14", "Mixed Doubles")
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, match.StatusScheduled, m.Status)
	assert.Equal(t, "2025-06-14", m.Date)

	require.Len(t, d.matches.InsertCalls, 1)
	assert.Equal(t, m.ID, d.matches.InsertCalls[0].ID)
	assert.Equal(t, 1, d.metrics.MatchesCreatedCount)
	assert.Len(t, d.notifier.MatchScheduledCalls, 1)

	require.Len(t, d.pubsub.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventMatchScheduled), d.pubsub.SendMessageCalls[0].Topic)
}

func TestCreateMatch_RosterValidation(t *testing.T) {
	t.Run("duplicate player", func(t *testing.T) {
		svc, d := newService()
		r := testRoster()
		r.Team2PlayerB = "m1"

		_, err := svc.CreateMatch(r, "2025-06-14", "Mixed Doubles")
		assert.ErrorIs(t, err, match.ErrRosterInvalid)
		assert.Empty(t, d.matches.InsertCalls)
	})

	t.Run("empty slot", func(t *testing.T) {
		svc, _ := newService()
		r := testRoster()
		r.Team1PlayerB = ""

		_, err := svc.CreateMatch(r, "2025-06-14", "Mixed Doubles")
		assert.ErrorIs(t, err, match.ErrRosterInvalid)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, d := newService()
		d.players.GetPlayersFunc = func(usernames []string) ([]club.Player, error) {
			return []club.Player{{Username: "m1"}}, nil
		}

		_, err := svc.CreateMatch(testRoster(), "2025-06-14", "Mixed Doubles")
		assert.ErrorIs(t, err, match.ErrRosterInvalid)
	})

	t.Run("player already in active match", func(t *testing.T) {
		svc, d := newService()
		d.matches.ActivePlayersFunc = func() (map[string]bool, error) {
			return map[string]bool{"f2": true}, nil
		}

		_, err := svc.CreateMatch(testRoster(), "2025-06-14", "Mixed Doubles")
		assert.ErrorIs(t, err, match.ErrRosterInvalid)
		assert.Empty(t, d.matches.InsertCalls)
	})
}

func TestCreateMatch_NotificationFailureIsNotFatal(t *testing.T) {
	svc, d := newService()
	d.notifier.SendMatchScheduledFunc = func(m *match.Match, players []club.Player, dryRun bool) error {
		return errors.New("slack down")
	}
	d.pubsub.SendMessageFunc = func(topic string, data any) error {
		return errors.New("pubsub down")
	}

	m, err := svc.CreateMatch(testRoster(), "2025-06-14", "Mixed Doubles")
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Len(t, d.matches.InsertCalls, 1)
}

func TestStartMatch(t *testing.T) {
	svc, d := newService()

	require.NoError(t, svc.StartMatch("match-1"))

	require.Len(t, d.matches.TransitionCalls, 1)
	call := d.matches.TransitionCalls[0]
	assert.Equal(t, "match-1", call.ID)
	assert.Equal(t, []match.Status{match.StatusScheduled}, call.From)
	assert.Equal(t, match.StatusOngoing, call.To)
}

func TestCancelMatch(t *testing.T) {
	t.Run("cancels scheduled match", func(t *testing.T) {
		svc, d := newService()

		require.NoError(t, svc.CancelMatch("match-1"))
		assert.Equal(t, 1, d.metrics.MatchesCanceledCount)

		require.Len(t, d.pubsub.SendMessageCalls, 1)
		assert.Equal(t, string(pubsub.EventMatchCanceled), d.pubsub.SendMessageCalls[0].Topic)
	})

	t.Run("transition error skips side effects", func(t *testing.T) {
		svc, d := newService()
		d.matches.TransitionFunc = func(id string, from []match.Status, to match.Status) error {
			return match.ErrInvalidTransition
		}

		err := svc.CancelMatch("match-1")
		assert.ErrorIs(t, err, match.ErrInvalidTransition)
		assert.Equal(t, 0, d.metrics.MatchesCanceledCount)
		assert.Empty(t, d.pubsub.SendMessageCalls)
	})
}

func TestFinishMatch(t *testing.T) {
	svc, d := newService()
	d.matches.GetFunc = func(id string) (*match.Match, error) {
		return &match.Match{ID: id, Roster: testRoster(), Status: match.StatusOngoing}, nil
	}

	m, err := svc.FinishMatch("match-1", match.Team2, "19-21")
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, m.Status)
	assert.Equal(t, match.Team2, m.WinnerTeam)
	assert.Equal(t, "19-21", m.Score)
	assert.Equal(t, "Nice Close Game!", m.Remark)

	require.Len(t, d.matches.CompleteMatchCalls, 1)
	call := d.matches.CompleteMatchCalls[0]
	assert.Equal(t, [2]string{"m2", "f2"}, call.Winners)
	assert.Equal(t, [2]string{"m1", "f1"}, call.Losers)
	assert.Equal(t, "Nice Close Game!", call.Remark)

	assert.Equal(t, 1, d.metrics.MatchesCompletedCount)
	assert.Len(t, d.notifier.MatchResultCalls, 1)
	require.Len(t, d.pubsub.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventMatchCompleted), d.pubsub.SendMessageCalls[0].Topic)
}

func TestFinishMatch_FromScheduled(t *testing.T) {
	// Clubs often record a result for a match nobody remembered to start.
	svc, d := newService()
	d.matches.GetFunc = func(id string) (*match.Match, error) {
		return &match.Match{ID: id, Roster: testRoster(), Status: match.StatusScheduled}, nil
	}

	m, err := svc.FinishMatch("match-1", match.Team1, "21-10")
	require.NoError(t, err)
	assert.Equal(t, "Decisive Victory!", m.Remark)
}

func TestFinishMatch_Errors(t *testing.T) {
	t.Run("unknown winner team", func(t *testing.T) {
		svc, d := newService()

		_, err := svc.FinishMatch("match-1", match.Team("Team 3"), "21-19")
		assert.ErrorIs(t, err, match.ErrInvalidTransition)
		assert.Empty(t, d.matches.CompleteMatchCalls)
	})

	t.Run("unknown match", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.FinishMatch("nope", match.Team1, "21-19")
		assert.ErrorIs(t, err, match.ErrNotFound)
	})

	t.Run("already completed", func(t *testing.T) {
		svc, d := newService()
		d.matches.GetFunc = func(id string) (*match.Match, error) {
			return &match.Match{ID: id, Roster: testRoster(), Status: match.StatusCompleted}, nil
		}

		_, err := svc.FinishMatch("match-1", match.Team1, "21-19")
		assert.ErrorIs(t, err, match.ErrInvalidTransition)
		assert.Empty(t, d.matches.CompleteMatchCalls)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		svc, d := newService()
		d.matches.GetFunc = func(id string) (*match.Match, error) {
			return &match.Match{ID: id, Roster: testRoster(), Status: match.StatusOngoing}, nil
		}
		d.matches.CompleteMatchFunc = func(id string, winner match.Team, score, remark string, winners, losers [2]string) error {
			return match.ErrRosterInvalid
		}

		_, err := svc.FinishMatch("match-1", match.Team1, "21-19")
		assert.ErrorIs(t, err, match.ErrRosterInvalid)
		assert.Equal(t, 0, d.metrics.MatchesCompletedCount)
		assert.Empty(t, d.notifier.MatchResultCalls)
	})
}

func TestFinishMatch_MalformedScoreYieldsEmptyRemark(t *testing.T) {
	svc, d := newService()
	d.matches.GetFunc = func(id string) (*match.Match, error) {
		return &match.Match{ID: id, Roster: testRoster(), Status: match.StatusOngoing}, nil
	}

	m, err := svc.FinishMatch("match-1", match.Team1, "walkover")
	require.NoError(t, err)
	assert.Empty(t, m.Remark)

	require.Len(t, d.matches.CompleteMatchCalls, 1)
	assert.Equal(t, "walkover", d.matches.CompleteMatchCalls[0].Score)
}
