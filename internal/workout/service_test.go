package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/trackit/internal/models"
)

type fakeStore struct {
	sets []models.WorkoutSet
	err  error
}

func (f *fakeStore) Init() error { return nil }
func (f *fakeStore) Load() error { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetConfigPath() string { return "" }

func (f *fakeStore) AddHabit(models.Habit) error { return nil }

func (f *fakeStore) GetAllHabits() ([]models.Habit, error) { return nil, nil }

func (f *fakeStore) AddWorkoutSets(rows []models.WorkoutSet) error {
	if f.err != nil {
		return f.err
	}
	for _, r := range rows {
		r.ID = int64(len(f.sets) + 1)
		f.sets = append(f.sets, r)
	}
	return nil
}

func (f *fakeStore) GetAllWorkoutSets() ([]models.WorkoutSet, error) {
	return f.sets, f.err
}

func TestLogBatchNumbersSets(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	sets := []SetInput{
		{Reps: 5, Weight: 100},
		{Reps: 5, Weight: 100},
		{Reps: 5, Weight: 105, Note: "felt heavy"},
	}
	require.NoError(t, svc.LogBatch("Squat", "2024-01-01", sets))

	rows, err := svc.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, r := range rows {
		assert.Equal(t, i+1, r.SetNum)
		assert.Equal(t, "Squat", r.Exercise)
		assert.Equal(t, "2024-01-01", r.Date)
	}
	assert.Equal(t, "felt heavy", rows[2].Note)
}

func TestLogBatchRejectsEmptyExercise(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	err := svc.LogBatch("  ", "2024-01-01", []SetInput{{Reps: 5, Weight: 100}})
	assert.ErrorIs(t, err, ErrEmptyExercise)
	assert.Empty(t, store.sets)
}

func TestLogBatchEmptySetsIsNoop(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	require.NoError(t, svc.LogBatch("Squat", "2024-01-01", nil))
	assert.Empty(t, store.sets)
}

func TestLogBatchDefaultsDateToToday(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	require.NoError(t, svc.LogBatch("Squat", "", []SetInput{{Reps: 5, Weight: 100}}))

	require.Len(t, store.sets, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), store.sets[0].Date)
}

func TestLogBatchPropagatesStoreError(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	svc := NewService(store)

	err := svc.LogBatch("Squat", "2024-01-01", []SetInput{{Reps: 5, Weight: 100}})
	assert.ErrorIs(t, err, assert.AnError)
}
