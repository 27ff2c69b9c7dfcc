package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		exercise string
		want     string
	}{
		{"Squat", "Legs"},
		{"Romanian Deadlift", "Legs"},
		{"Deadlift", "Back"},
		{"Bench Press", "Chest"},
		{"Overhead Press", "Shoulders"},
		{"Biceps Curl", "Arms"},
		{"Plank", "Core"},
		{"Handstand Walk", CategoryOther},
		{"", CategoryOther},
		{"squat", CategoryOther}, // lookup is case-sensitive
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.exercise), "exercise %q", tt.exercise)
	}
}

func TestCatalogExercisesSorted(t *testing.T) {
	names := CatalogExercises()

	assert.Len(t, names, 17)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		assert.NotEqual(t, CategoryOther, CategoryFor(name), "catalog exercise %q must map to a real category", name)
	}
}

func TestWorkoutSetVolume(t *testing.T) {
	s := WorkoutSet{Reps: 5, Weight: 105}
	assert.InDelta(t, 525, s.Volume(), 1e-9)

	assert.Zero(t, WorkoutSet{Reps: 0, Weight: 100}.Volume())
	assert.Zero(t, WorkoutSet{Reps: 10, Weight: 0}.Volume())
}
