package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/trackit/internal/models"
)

type fakeStore struct {
	habits []models.Habit
	err    error
}

func (f *fakeStore) Init() error { return nil }
func (f *fakeStore) Load() error { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetConfigPath() string { return "" }

func (f *fakeStore) AddHabit(h models.Habit) error {
	if f.err != nil {
		return f.err
	}
	h.ID = int64(len(f.habits) + 1)
	f.habits = append(f.habits, h)
	return nil
}

func (f *fakeStore) GetAllHabits() ([]models.Habit, error) {
	return f.habits, f.err
}

func (f *fakeStore) AddWorkoutSets([]models.WorkoutSet) error { return nil }
func (f *fakeStore) GetAllWorkoutSets() ([]models.WorkoutSet, error) {
	return nil, nil
}

func TestLogAppendsHabit(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	require.NoError(t, svc.Log("water", 8, "2024-01-01"))
	require.NoError(t, svc.Log("water", 7, "2024-01-02"))

	rows, err := svc.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "water", rows[0].Name)
	assert.Equal(t, 8, rows[0].Value)
	assert.Equal(t, "2024-01-01", rows[0].Date)
}

func TestLogRejectsEmptyName(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	err := svc.Log("   ", 8, "2024-01-01")
	assert.ErrorIs(t, err, ErrEmptyHabit)
	assert.Empty(t, store.habits)
}

func TestLogDefaultsDateToToday(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	require.NoError(t, svc.Log("water", 8, ""))

	require.Len(t, store.habits, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), store.habits[0].Date)
}

func TestLogPropagatesStoreError(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	svc := NewService(store)

	err := svc.Log("water", 8, "2024-01-01")
	assert.ErrorIs(t, err, assert.AnError)
}
