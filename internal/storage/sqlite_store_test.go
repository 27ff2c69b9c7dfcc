package storage

import (
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/trackit/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "trackit.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitCreatesEmptyLogs(t *testing.T) {
	store := newTestStore(t)

	habits, err := store.GetAllHabits()
	require.NoError(t, err)
	assert.Empty(t, habits)

	sets, err := store.GetAllWorkoutSets()
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestInitIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddHabit(models.Habit{Name: "water", Value: 8, Date: "2024-01-01"}))
	require.NoError(t, store.Close())

	// A second Init against the same file must keep existing data.
	again := NewSQLiteStore(store.GetConfigPath())
	require.NoError(t, again.Init())
	defer again.Close()

	habits, err := again.GetAllHabits()
	require.NoError(t, err)
	assert.Len(t, habits, 1)
}

func TestLoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestHabitsAppendOnlyOrdering(t *testing.T) {
	store := newTestStore(t)

	inputs := []models.Habit{
		{Name: "water", Value: 8, Date: "2024-01-03"},
		{Name: "sleep", Value: 7, Date: "2024-01-01"},
		{Name: "water", Value: 6, Date: "2024-01-02"},
	}
	for _, h := range inputs {
		require.NoError(t, store.AddHabit(h))
	}

	habits, err := store.GetAllHabits()
	require.NoError(t, err)
	require.Len(t, habits, 3)

	// Rows come back in insertion order with strictly increasing ids,
	// regardless of their dates.
	for i, h := range habits {
		assert.Equal(t, inputs[i].Name, h.Name)
		assert.Equal(t, inputs[i].Value, h.Value)
		assert.Equal(t, inputs[i].Date, h.Date)
		if i > 0 {
			assert.Greater(t, h.ID, habits[i-1].ID)
		}
	}
}

func TestDuplicateHabitRowsAreKept(t *testing.T) {
	store := newTestStore(t)

	h := models.Habit{Name: "water", Value: 8, Date: "2024-01-01"}
	require.NoError(t, store.AddHabit(h))
	require.NoError(t, store.AddHabit(h))

	habits, err := store.GetAllHabits()
	require.NoError(t, err)
	require.Len(t, habits, 2)
	assert.NotEqual(t, habits[0].ID, habits[1].ID)
}

func TestAddWorkoutSetsBatch(t *testing.T) {
	store := newTestStore(t)

	batch := []models.WorkoutSet{
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 1, Reps: 5, Weight: 100},
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 2, Reps: 5, Weight: 100},
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 3, Reps: 5, Weight: 105, Note: "pr attempt"},
	}
	require.NoError(t, store.AddWorkoutSets(batch))

	sets, err := store.GetAllWorkoutSets()
	require.NoError(t, err)
	require.Len(t, sets, 3)

	for i, s := range sets {
		assert.Equal(t, i+1, s.SetNum)
		assert.Equal(t, "Squat", s.Exercise)
	}
	assert.Equal(t, "pr attempt", sets[2].Note)
	assert.Empty(t, sets[0].Note)
}

func TestAddWorkoutSetsEmptyBatch(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddWorkoutSets(nil))

	sets, err := store.GetAllWorkoutSets()
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestWorkoutSetsInsertionOrderAcrossBatches(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddWorkoutSets([]models.WorkoutSet{
		{Date: "2024-01-02", Exercise: "Squat", SetNum: 1, Reps: 5, Weight: 100},
	}))
	require.NoError(t, store.AddWorkoutSets([]models.WorkoutSet{
		{Date: "2024-01-01", Exercise: "Bench Press", SetNum: 1, Reps: 8, Weight: 60},
	}))

	sets, err := store.GetAllWorkoutSets()
	require.NoError(t, err)
	require.Len(t, sets, 2)

	// Insertion order, not date order.
	assert.Equal(t, "Squat", sets[0].Exercise)
	assert.Equal(t, "Bench Press", sets[1].Exercise)
	assert.Greater(t, sets[1].ID, sets[0].ID)
}

// A failing insert mid-batch must roll the whole batch back.
func TestAddWorkoutSetsBatchIsAtomic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := &SQLiteStore{path: "mock", db: db}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO workout_sets")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WillReturnError(assert.AnError)
	mock.ExpectRollback()

	batch := []models.WorkoutSet{
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 1, Reps: 5, Weight: 100},
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 2, Reps: 5, Weight: 100},
	}
	err = store.AddWorkoutSets(batch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set 2 of 2")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitAndWorkoutLogsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AddHabit(models.Habit{Name: "water", Value: 8, Date: "2024-01-01"}))
	require.NoError(t, store.AddWorkoutSets([]models.WorkoutSet{
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 1, Reps: 5, Weight: 100},
	}))

	habits, err := store.GetAllHabits()
	require.NoError(t, err)
	sets, err := store.GetAllWorkoutSets()
	require.NoError(t, err)

	assert.Len(t, habits, 1)
	assert.Len(t, sets, 1)
}
