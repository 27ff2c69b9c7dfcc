package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntList(t *testing.T) {
	got, err := parseIntList("5, 5,5")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 5}, got)

	_, err = parseIntList("5,x")
	assert.Error(t, err)

	_, err = parseIntList(" , ")
	assert.Error(t, err)

	_, err = parseIntList("-1")
	assert.Error(t, err)
}

func TestParseFloatList(t *testing.T) {
	got, err := parseFloatList("100,100,105.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 100, 105.5}, got)

	_, err = parseFloatList("abc")
	assert.Error(t, err)
}

func TestBuildSetsBroadcastsSingleWeight(t *testing.T) {
	fm := &WorkoutFormModel{Reps: "5,5,5", Weights: "100", Note: "easy"}

	sets, err := buildSets(fm)
	require.NoError(t, err)
	require.Len(t, sets, 3)
	for _, s := range sets {
		assert.Equal(t, 5, s.Reps)
		assert.InDelta(t, 100, s.Weight, 1e-9)
		assert.Equal(t, "easy", s.Note)
	}
}

func TestBuildSetsLengthMismatch(t *testing.T) {
	fm := &WorkoutFormModel{Reps: "5,5,5", Weights: "100,105"}
	_, err := buildSets(fm)
	assert.Error(t, err)
}
