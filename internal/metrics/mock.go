package metrics

import "sync"

// MockMetrics is a no-op implementation of the Metrics interface that
// records call counts for assertions.
type MockMetrics struct {
	mu sync.Mutex

	MatchesCreatedCount     int
	MatchesCompletedCount   int
	MatchesCanceledCount    int
	AssignmentFailuresCount int
	SlackNotifSentCount     int
	SlackNotifFailedCount   int
	ResolveObservations     []float64
	StartupTime             float64
}

var _ Metrics = (*MockMetrics)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

func (m *MockMetrics) IncMatchesCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesCreatedCount++
}

func (m *MockMetrics) IncMatchesCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesCompletedCount++
}

func (m *MockMetrics) IncMatchesCanceled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesCanceledCount++
}

func (m *MockMetrics) IncAssignmentFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AssignmentFailuresCount++
}

func (m *MockMetrics) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *MockMetrics) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *MockMetrics) ObserveResolveDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResolveObservations = append(m.ResolveObservations, duration)
}

func (m *MockMetrics) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
