package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/trackit/internal/capsule"
	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/models"
	"github.com/julianstephens/trackit/internal/workout"
)

type stubStore struct {
	habits   []models.Habit
	sets     []models.WorkoutSet
	habitErr error
	setsErr  error
}

func (s *stubStore) Init() error  { return nil }
func (s *stubStore) Load() error  { return nil }
func (s *stubStore) Close() error { return nil }

func (s *stubStore) GetConfigPath() string { return "" }

func (s *stubStore) AddHabit(h models.Habit) error {
	s.habits = append(s.habits, h)
	return nil
}

func (s *stubStore) GetAllHabits() ([]models.Habit, error) {
	return s.habits, s.habitErr
}

func (s *stubStore) AddWorkoutSets(rows []models.WorkoutSet) error {
	s.sets = append(s.sets, rows...)
	return nil
}

func (s *stubStore) GetAllWorkoutSets() ([]models.WorkoutSet, error) {
	return s.sets, s.setsErr
}

func newTestModel(t *testing.T, store *stubStore) Model {
	t.Helper()
	journal := capsule.NewJournal(filepath.Join(t.TempDir(), "time_capsule.txt"))
	return NewModel(store, habit.NewService(store), workout.NewService(store), journal)
}

func TestRefreshLoadsSnapshots(t *testing.T) {
	store := &stubStore{
		habits: []models.Habit{{ID: 1, Name: "water", Value: 8, Date: "2024-01-01"}},
		sets:   []models.WorkoutSet{{ID: 1, Date: "2024-01-01", Exercise: "Squat", SetNum: 1, Reps: 5, Weight: 100}},
	}

	m := newTestModel(t, store)

	require.Len(t, m.habitRows, 1)
	require.Len(t, m.workoutRows, 1)
	assert.Empty(t, m.statusMsg)
	assert.False(t, m.statusIsErr)
}

// A failing load must show up on the status line instead of leaving the
// tables silently stale.
func TestRefreshSurfacesHabitLoadError(t *testing.T) {
	store := &stubStore{habitErr: assert.AnError}

	m := newTestModel(t, store)

	assert.True(t, m.statusIsErr)
	assert.Contains(t, m.statusMsg, "failed to load habits")
}

func TestRefreshSurfacesWorkoutLoadError(t *testing.T) {
	store := &stubStore{setsErr: assert.AnError}

	m := newTestModel(t, store)

	assert.True(t, m.statusIsErr)
	assert.Contains(t, m.statusMsg, "failed to load workouts")
}

func TestRefreshKeepsPreviousRowsOnError(t *testing.T) {
	store := &stubStore{
		habits: []models.Habit{{ID: 1, Name: "water", Value: 8, Date: "2024-01-01"}},
	}

	m := newTestModel(t, store)
	require.Len(t, m.habitRows, 1)

	store.habitErr = assert.AnError
	m.refresh()

	assert.True(t, m.statusIsErr)
	assert.Len(t, m.habitRows, 1)
}
