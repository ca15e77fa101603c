package attendance_test

import (
	"testing"

	"github.com/mkrogh/shuttletrack/internal/attendance"
	"github.com/mkrogh/shuttletrack/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (attendance.AttendanceStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return attendance.New(db), dbTeardown
}

func TestPutAndGet(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Put("2025-06-14", []string{"m1", "f1", "m2"}))

	present, err := store.Get("2025-06-14")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "f1", "m2"}, present)
}

func TestGet_NoRecord(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Get("2025-06-14")
	assert.ErrorIs(t, err, attendance.ErrNoRecord)
}

func TestPut_ReplacesExistingRecord(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Put("2025-06-14", []string{"m1", "m2"}))
	require.NoError(t, store.Put("2025-06-14", []string{"f1"}))

	present, err := store.Get("2025-06-14")
	require.NoError(t, err)
	assert.Equal(t, []string{"f1"}, present)
}

func TestPut_EmptySetIsARecord(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	// An explicitly empty roll call is distinct from no roll call at all.
	require.NoError(t, store.Put("2025-06-14", nil))

	present, err := store.Get("2025-06-14")
	require.NoError(t, err)
	assert.Empty(t, present)
}
