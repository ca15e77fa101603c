package attendance

import "errors"

// ErrNoRecord is returned when no attendance has been taken for a date.
// Callers are expected to fall back to the full player directory.
var ErrNoRecord = errors.New("no attendance record for date")

// AttendanceStore defines the interface for per-day attendance records.
// Dates are YYYY-MM-DD strings; one record per date.
type AttendanceStore interface {
	// Get returns the set of present usernames for the given date, or
	// ErrNoRecord when attendance was never taken for it.
	Get(date string) ([]string, error)
	// Put records the full present set for the date, overwriting any
	// previous record.
	Put(date string, present []string) error
}
