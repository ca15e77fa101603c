package match

import "errors"

var (
	// ErrNotFound is returned when a match id is unknown.
	ErrNotFound = errors.New("match not found")
	// ErrInvalidTransition is returned when a lifecycle rule is violated.
	ErrInvalidTransition = errors.New("invalid match state transition")
	// ErrRosterInvalid is returned when a roster references duplicate,
	// missing, or already-active players.
	ErrRosterInvalid = errors.New("invalid roster")
)

// MatchStore defines the persistence interface for match records. Business
// rules (which transitions are legal, roster validation) live in the
// lifecycle service; the store only guards its own consistency: status
// changes are conditional on the expected current states, and CompleteMatch
// applies the result fields and both teams' counters in one transaction.
type MatchStore interface {
	Insert(m *Match) error
	Get(id string) (*Match, error)
	List(filter Filter) ([]*Match, error)
	// ActivePlayers returns the union of slot-holders across every match
	// whose status is scheduled or ongoing, regardless of date.
	ActivePlayers() (map[string]bool, error)
	// Transition moves a match to the given status, failing with
	// ErrInvalidTransition unless its current status is one of from.
	Transition(id string, from []Status, to Status) error
	// CompleteMatch atomically sets status=COMPLETED together with the
	// winner, score and remark, increments the two winners' win counters
	// and the two losers' loss counters. Either all of it persists or
	// none of it does.
	CompleteMatch(id string, winner Team, score, remark string, winners, losers [2]string) error
}
