package storage

import "github.com/julianstephens/trackit/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habit log (append-only)
	AddHabit(models.Habit) error
	GetAllHabits() ([]models.Habit, error)

	// Workout log (append-only, batch is atomic)
	AddWorkoutSets([]models.WorkoutSet) error
	GetAllWorkoutSets() ([]models.WorkoutSet, error)

	// Utils
	GetConfigPath() string
}
