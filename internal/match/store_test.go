package match_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/database"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (match.MatchStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	players := club.New(db)
	for _, u := range []string{"m1", "m2", "f1", "f2", "m3", "f3"} {
		require.NoError(t, players.UpsertPlayer(club.Player{Username: u, Name: u, Gender: club.GenderMale}))
	}

	return match.New(db), db, dbTeardown
}

func testRoster() match.Roster {
	return match.Roster{
		Team1PlayerA: "m1",
		Team1PlayerB: "f1",
		Team2PlayerA: "m2",
		Team2PlayerB: "f2",
	}
}

func insertMatch(t *testing.T, store match.MatchStore, id string, status match.Status) *match.Match {
	t.Helper()
	m := &match.Match{
		ID:        id,
		Roster:    testRoster(),
		Date:      "2025-06-14",
		GameType:  "Mixed Doubles",
		Status:    status,
		CreatedAt: time.Now().Unix(),
	}
	require.NoError(t, store.Insert(m))
	return m
}

func TestInsertAndGet(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusScheduled)

	got, err := store.Get("match-1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusScheduled, got.Status)
	assert.Equal(t, "m1", got.Roster.Team1PlayerA)
	assert.Equal(t, "f2", got.Roster.Team2PlayerB)
	assert.Empty(t, got.Score)

	_, err = store.Get("nope")
	assert.ErrorIs(t, err, match.ErrNotFound)
}

func TestList_Filters(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusScheduled)

	m2 := &match.Match{
		ID: "match-2",
		Roster: match.Roster{
			Team1PlayerA: "m2",
			Team1PlayerB: "f2",
			Team2PlayerA: "m3",
			Team2PlayerB: "f3",
		},
		Date:      "2025-06-15",
		GameType:  "Mixed Doubles",
		Status:    match.StatusCompleted,
		CreatedAt: time.Now().Unix() + 1,
	}
	require.NoError(t, store.Insert(m2))
	_, err := db.Exec("UPDATE matches SET winner_team = 'Team 1', score = '21-19' WHERE id = 'match-2'")
	require.NoError(t, err)

	t.Run("no filter returns all, newest first", func(t *testing.T) {
		matches, err := store.List(match.Filter{})
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "match-2", matches[0].ID)
	})

	t.Run("by status", func(t *testing.T) {
		matches, err := store.List(match.Filter{Status: match.StatusCompleted})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "match-2", matches[0].ID)
		assert.Equal(t, match.Team1, matches[0].WinnerTeam)
		assert.Equal(t, "21-19", matches[0].Score)
	})

	t.Run("by date", func(t *testing.T) {
		matches, err := store.List(match.Filter{Date: "2025-06-14"})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "match-1", matches[0].ID)
	})

	t.Run("by player matches any slot", func(t *testing.T) {
		matches, err := store.List(match.Filter{Player: "f2"})
		require.NoError(t, err)
		assert.Len(t, matches, 2)

		matches, err = store.List(match.Filter{Player: "m3"})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "match-2", matches[0].ID)
	})
}

func TestActivePlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusScheduled)

	m2 := &match.Match{
		ID: "match-2",
		Roster: match.Roster{
			Team1PlayerA: "m3",
			Team1PlayerB: "f3",
			Team2PlayerA: "m2",
			Team2PlayerB: "f2",
		},
		Date:      "2025-06-14",
		GameType:  "Mixed Doubles",
		Status:    match.StatusCompleted,
		CreatedAt: time.Now().Unix(),
	}
	require.NoError(t, store.Insert(m2))

	active, err := store.ActivePlayers()
	require.NoError(t, err)
	assert.True(t, active["m1"])
	assert.True(t, active["f1"])
	assert.True(t, active["m2"])
	assert.True(t, active["f2"])
	// Only players of completed match stay free.
	assert.False(t, active["m3"])
	assert.False(t, active["f3"])
}

func TestTransition(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusScheduled)

	t.Run("legal transition", func(t *testing.T) {
		err := store.Transition("match-1", []match.Status{match.StatusScheduled}, match.StatusOngoing)
		require.NoError(t, err)

		got, err := store.Get("match-1")
		require.NoError(t, err)
		assert.Equal(t, match.StatusOngoing, got.Status)
	})

	t.Run("illegal transition leaves status untouched", func(t *testing.T) {
		err := store.Transition("match-1", []match.Status{match.StatusScheduled}, match.StatusCanceled)
		assert.ErrorIs(t, err, match.ErrInvalidTransition)

		got, err := store.Get("match-1")
		require.NoError(t, err)
		assert.Equal(t, match.StatusOngoing, got.Status)
	})

	t.Run("unknown match", func(t *testing.T) {
		err := store.Transition("nope", []match.Status{match.StatusScheduled}, match.StatusOngoing)
		assert.ErrorIs(t, err, match.ErrNotFound)
	})
}

func TestCompleteMatch(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusScheduled)
	players := testRoster()

	err := store.CompleteMatch("match-1", match.Team1, "21-19", "Nice Close Game!",
		players.Team(match.Team1), players.Team(match.Team2))
	require.NoError(t, err)

	got, err := store.Get("match-1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, got.Status)
	assert.Equal(t, match.Team1, got.WinnerTeam)
	assert.Equal(t, "21-19", got.Score)
	assert.Equal(t, "Nice Close Game!", got.Remark)
}

func TestCompleteMatch_UpdatesCounters(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusOngoing)
	players := testRoster()

	require.NoError(t, store.CompleteMatch("match-1", match.Team2, "15-21", "Decisive Victory!",
		players.Team(match.Team2), players.Team(match.Team1)))

	clubStore := club.New(db)
	winner, err := clubStore.GetPlayer("m2")
	require.NoError(t, err)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 0, winner.Losses)

	loser, err := clubStore.GetPlayer("f1")
	require.NoError(t, err)
	assert.Equal(t, 0, loser.Wins)
	assert.Equal(t, 1, loser.Losses)
}

func TestCompleteMatch_RollsBackOnBadRoster(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	insertMatch(t, store, "match-1", match.StatusOngoing)
	players := testRoster()

	// Losers point at unknown usernames, so the loss update touches zero
	// rows and the whole completion must roll back.
	err := store.CompleteMatch("match-1", match.Team1, "21-10", "Decisive Victory!",
		players.Team(match.Team1), [2]string{"ghost1", "ghost2"})
	assert.ErrorIs(t, err, match.ErrRosterInvalid)

	got, err := store.Get("match-1")
	require.NoError(t, err)
	assert.Equal(t, match.StatusOngoing, got.Status)
	assert.Empty(t, got.Score)

	clubStore := club.New(db)
	p, err := clubStore.GetPlayer("m1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Wins)
}

func TestCompleteMatch_InvalidStates(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	players := testRoster()

	t.Run("already completed", func(t *testing.T) {
		insertMatch(t, store, "match-1", match.StatusCompleted)
		err := store.CompleteMatch("match-1", match.Team1, "21-19", "",
			players.Team(match.Team1), players.Team(match.Team2))
		assert.ErrorIs(t, err, match.ErrInvalidTransition)
	})

	t.Run("canceled", func(t *testing.T) {
		insertMatch(t, store, "match-2", match.StatusCanceled)
		err := store.CompleteMatch("match-2", match.Team1, "21-19", "",
			players.Team(match.Team1), players.Team(match.Team2))
		assert.ErrorIs(t, err, match.ErrInvalidTransition)
	})

	t.Run("unknown match", func(t *testing.T) {
		err := store.CompleteMatch("nope", match.Team1, "21-19", "",
			players.Team(match.Team1), players.Team(match.Team2))
		assert.ErrorIs(t, err, match.ErrNotFound)
	})
}
