// Package availability computes, for a given day, which players are
// eligible for a new match.
package availability

import (
	"github.com/charmbracelet/log"
	"github.com/mkrogh/shuttletrack/internal/attendance"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
)

// Source tags which presence policy produced a result.
type Source string

const (
	// SourceAttendance means the day's attendance record was used.
	SourceAttendance Source = "ATTENDANCE"
	// SourceAllPlayers is the fail-open default: no attendance record
	// exists (or the lookup failed), so every registered player counts
	// as present. This is deliberate bootstrap behavior, kept from the
	// days before attendance was first taken.
	SourceAllPlayers Source = "ALL_PLAYERS"
)

// Result is an ordered set of eligible players plus the policy that
// produced it. Players keep directory insertion order. Empty is a valid,
// non-error result.
type Result struct {
	Players []club.Player `json:"players"`
	Source  Source        `json:"source"`
}

// ByGender returns the subset of the result with the given gender, in order.
func (r *Result) ByGender(gender club.Gender) []club.Player {
	var out []club.Player
	for _, p := range r.Players {
		if p.Gender == gender {
			out = append(out, p)
		}
	}
	return out
}

// Resolver derives availability from the directory, the day's attendance
// and the set of active matches.
type Resolver struct {
	players    club.ClubStore
	attendance attendance.AttendanceStore
	matches    match.MatchStore
}

// New creates a new Resolver.
func New(players club.ClubStore, att attendance.AttendanceStore, matches match.MatchStore) *Resolver {
	return &Resolver{
		players:    players,
		attendance: att,
		matches:    matches,
	}
}

// Resolve returns the players eligible for a new match on the given date:
// the present set minus everyone holding a slot in a scheduled or ongoing
// match. Active matches block players regardless of the match's own date.
func (r *Resolver) Resolve(date string) (*Result, error) {
	all, err := r.players.GetAllPlayers()
	if err != nil {
		return nil, err
	}

	source := SourceAttendance
	present, err := r.attendance.Get(date)
	if err != nil {
		if err != attendance.ErrNoRecord {
			log.Warn("Attendance lookup failed, falling back to all players", "date", date, "error", err)
		}
		source = SourceAllPlayers
	}

	active, err := r.matches.ActivePlayers()
	if err != nil {
		return nil, err
	}

	var presentSet map[string]bool
	if source == SourceAttendance {
		presentSet = make(map[string]bool, len(present))
		for _, u := range present {
			presentSet[u] = true
		}
	}

	result := &Result{Players: []club.Player{}, Source: source}
	for _, p := range all {
		if presentSet != nil && !presentSet[p.Username] {
			continue
		}
		if active[p.Username] {
			continue
		}
		result.Players = append(result.Players, p)
	}

	log.Debug("Resolved availability", "date", date, "source", source, "available", len(result.Players))
	return result, nil
}
