package attendance

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store handles database operations for attendance records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new AttendanceStore backed by the given database.
func New(db *sql.DB) AttendanceStore {
	return &store{
		db: db,
	}
}

func (s *store) Get(date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var presentJSON string
	err := s.db.QueryRow("SELECT present_json FROM attendance WHERE day = ?", date).Scan(&presentJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("failed to get attendance for %s: %w", date, err)
	}

	var present []string
	if err := json.Unmarshal([]byte(presentJSON), &present); err != nil {
		return nil, fmt.Errorf("failed to unmarshal present set for %s: %w", date, err)
	}
	return present, nil
}

func (s *store) Put(date string, present []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if present == nil {
		present = []string{}
	}
	presentJSON, err := json.Marshal(present)
	if err != nil {
		return fmt.Errorf("failed to marshal present set: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO attendance (day, present_json, recorded_at)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			present_json = excluded.present_json,
			recorded_at = excluded.recorded_at;
	`, date, string(presentJSON), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to put attendance for %s: %w", date, err)
	}

	log.Info("Recorded attendance", "date", date, "present", len(present))
	return nil
}
