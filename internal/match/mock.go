package match

import "sync"

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	InsertFunc        func(m *Match) error
	GetFunc           func(id string) (*Match, error)
	ListFunc          func(filter Filter) ([]*Match, error)
	ActivePlayersFunc func() (map[string]bool, error)
	TransitionFunc    func(id string, from []Status, to Status) error
	CompleteMatchFunc func(id string, winner Team, score, remark string, winners, losers [2]string) error

	// Call records
	InsertCalls     []*Match
	TransitionCalls []struct {
		ID   string
		From []Status
		To   Status
	}
	CompleteMatchCalls []struct {
		ID      string
		Winner  Team
		Score   string
		Remark  string
		Winners [2]string
		Losers  [2]string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Insert(mt *Match) error {
	m.mu.Lock()
	m.InsertCalls = append(m.InsertCalls, mt)
	m.mu.Unlock()
	if m.InsertFunc != nil {
		return m.InsertFunc(mt)
	}
	return nil
}

func (m *MockStore) Get(id string) (*Match, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) List(filter Filter) ([]*Match, error) {
	if m.ListFunc != nil {
		return m.ListFunc(filter)
	}
	return nil, nil
}

func (m *MockStore) ActivePlayers() (map[string]bool, error) {
	if m.ActivePlayersFunc != nil {
		return m.ActivePlayersFunc()
	}
	return map[string]bool{}, nil
}

func (m *MockStore) Transition(id string, from []Status, to Status) error {
	m.mu.Lock()
	m.TransitionCalls = append(m.TransitionCalls, struct {
		ID   string
		From []Status
		To   Status
	}{id, from, to})
	m.mu.Unlock()
	if m.TransitionFunc != nil {
		return m.TransitionFunc(id, from, to)
	}
	return nil
}

func (m *MockStore) CompleteMatch(id string, winner Team, score, remark string, winners, losers [2]string) error {
	m.mu.Lock()
	m.CompleteMatchCalls = append(m.CompleteMatchCalls, struct {
		ID      string
		Winner  Team
		Score   string
		Remark  string
		Winners [2]string
		Losers  [2]string
	}{id, winner, score, remark, winners, losers})
	m.mu.Unlock()
	if m.CompleteMatchFunc != nil {
		return m.CompleteMatchFunc(id, winner, score, remark, winners, losers)
	}
	return nil
}
