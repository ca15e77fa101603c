package club

import "sync"

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayerFunc  func(player Player) error
	GetPlayerFunc     func(username string) (*Player, error)
	GetAllPlayersFunc func() ([]Player, error)
	GetPlayersFunc    func(usernames []string) ([]Player, error)
	IsKnownPlayerFunc func(username string) bool

	// Call records
	UpsertPlayerCalls []Player
	GetPlayerCalls    []string
	GetPlayersCalls   [][]string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertPlayer(player Player) error {
	m.mu.Lock()
	m.UpsertPlayerCalls = append(m.UpsertPlayerCalls, player)
	m.mu.Unlock()
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(player)
	}
	return nil
}

func (m *MockStore) GetPlayer(username string) (*Player, error) {
	m.mu.Lock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, username)
	m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(username)
	}
	return nil, ErrNotFound
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) GetPlayers(usernames []string) ([]Player, error) {
	m.mu.Lock()
	m.GetPlayersCalls = append(m.GetPlayersCalls, usernames)
	m.mu.Unlock()
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(usernames)
	}
	return []Player{}, nil
}

func (m *MockStore) IsKnownPlayer(username string) bool {
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(username)
	}
	return false
}
