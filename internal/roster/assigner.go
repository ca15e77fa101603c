// Package roster resolves the four player slots of a new match from manual
// picks and randomized fill.
package roster

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/shuttletrack/internal/availability"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
)

var (
	// ErrInsufficientCandidates is returned when a random slot's eligible
	// pool is empty at assignment time.
	ErrInsufficientCandidates = errors.New("no candidates available for random slot")
	// ErrIncompleteRoster is returned when a slot is still unset after
	// manual and random resolution.
	ErrIncompleteRoster = errors.New("roster has unfilled slots")
	// ErrDuplicatePlayer is returned when the four resolved usernames are
	// not pairwise distinct.
	ErrDuplicatePlayer = errors.New("duplicate player in roster")
)

// Slot is one position in a mixed-doubles request: either a manual username
// or a request to fill it at random from the matching pool.
type Slot struct {
	Username string `json:"username"`
	Random   bool   `json:"random"`
}

// MixedRequest describes the standard mixed-doubles flow: each team fields
// one male and one female player, and random fill draws from the same-gender
// available pool.
type MixedRequest struct {
	Team1Male   Slot `json:"team1_male"`
	Team1Female Slot `json:"team1_female"`
	Team2Male   Slot `json:"team2_male"`
	Team2Female Slot `json:"team2_female"`
}

// Assigner fills match rosters. The random source is injected so draws are
// deterministic under test.
type Assigner struct {
	rng *rand.Rand
}

// New creates a new Assigner using the given random source.
func New(rng *rand.Rand) *Assigner {
	return &Assigner{rng: rng}
}

// AssignMixed resolves a mixed-doubles roster against the day's availability.
// Random slots sample without replacement from the same-gender pool,
// excluding every manual pick and every earlier random draw. Uniqueness is
// re-checked over the whole roster as a final invariant, since two manual
// picks can collide even when each slot validated on its own.
func (a *Assigner) AssignMixed(req MixedRequest, avail *availability.Result) (match.Roster, error) {
	slots := []struct {
		slot   Slot
		gender club.Gender
	}{
		{req.Team1Male, club.GenderMale},
		{req.Team1Female, club.GenderFemale},
		{req.Team2Male, club.GenderMale},
		{req.Team2Female, club.GenderFemale},
	}

	used := make(map[string]bool, 4)
	for _, s := range slots {
		if s.slot.Username != "" {
			used[s.slot.Username] = true
		}
	}

	var resolved [4]string
	for i, s := range slots {
		if s.slot.Username != "" {
			resolved[i] = s.slot.Username
			continue
		}
		if !s.slot.Random {
			continue
		}
		pick, err := a.draw(avail.ByGender(s.gender), used)
		if err != nil {
			return match.Roster{}, err
		}
		log.Debug("Randomly assigned slot", "slot", i, "gender", s.gender, "username", pick)
		resolved[i] = pick
		used[pick] = true
	}

	return finalize(resolved)
}

// AssignCustom resolves the custom-match flow: no gender partition, all four
// slots supplied manually. The same completeness and uniqueness checks apply.
func AssignCustom(team1A, team1B, team2A, team2B string) (match.Roster, error) {
	return finalize([4]string{team1A, team1B, team2A, team2B})
}

func (a *Assigner) draw(pool []club.Player, used map[string]bool) (string, error) {
	var candidates []string
	for _, p := range pool {
		if !used[p.Username] {
			candidates = append(candidates, p.Username)
		}
	}
	if len(candidates) == 0 {
		return "", ErrInsufficientCandidates
	}
	return candidates[a.rng.Intn(len(candidates))], nil
}

func finalize(resolved [4]string) (match.Roster, error) {
	for i, u := range resolved {
		if u == "" {
			return match.Roster{}, fmt.Errorf("slot %d unset: %w", i, ErrIncompleteRoster)
		}
	}

	roster := match.Roster{
		Team1PlayerA: resolved[0],
		Team1PlayerB: resolved[1],
		Team2PlayerA: resolved[2],
		Team2PlayerB: resolved[3],
	}
	if !roster.Distinct() {
		return match.Roster{}, ErrDuplicatePlayer
	}
	return roster, nil
}
