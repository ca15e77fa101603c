package attendance

import "sync"

// MockStore is a mock implementation of the AttendanceStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	GetFunc func(date string) ([]string, error)
	PutFunc func(date string, present []string) error

	PutCalls []struct {
		Date    string
		Present []string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Get(date string) ([]string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(date)
	}
	return nil, ErrNoRecord
}

func (m *MockStore) Put(date string, present []string) error {
	m.mu.Lock()
	m.PutCalls = append(m.PutCalls, struct {
		Date    string
		Present []string
	}{date, present})
	m.mu.Unlock()
	if m.PutFunc != nil {
		return m.PutFunc(date, present)
	}
	return nil
}
