package workout

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/models"
	"github.com/julianstephens/trackit/internal/storage"
)

// ErrEmptyExercise is returned when a batch submission carries no exercise
// name. No row of the batch is written in that case.
var ErrEmptyExercise = errors.New("exercise name must not be empty")

// SetInput is one (reps, weight, note) tuple of a submission.
type SetInput struct {
	Reps   int
	Weight float64
	Note   string
}

// Service translates one form submission into a batch of store appends.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// LogBatch appends one row per set, numbered 1..n in submission order, all
// sharing the same date and exercise. The batch commits atomically: on
// failure no row is written. An empty date defaults to today.
func (s *Service) LogBatch(exercise, date string, sets []SetInput) error {
	if strings.TrimSpace(exercise) == "" {
		return ErrEmptyExercise
	}
	if len(sets) == 0 {
		return nil
	}
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	batchID := uuid.New().String()
	rows := make([]models.WorkoutSet, 0, len(sets))
	for i, in := range sets {
		rows = append(rows, models.WorkoutSet{
			Date:     date,
			Exercise: exercise,
			SetNum:   i + 1,
			Reps:     in.Reps,
			Weight:   in.Weight,
			Note:     in.Note,
		})
	}

	if err := s.store.AddWorkoutSets(rows); err != nil {
		slog.Error("workout batch failed", "batch", batchID, "exercise", exercise, "sets", len(rows), "error", err)
		return err
	}

	slog.Debug("logged workout batch", "batch", batchID, "exercise", exercise, "sets", len(rows), "date", date)
	return nil
}

// Snapshot loads the full workout log in insertion order.
func (s *Service) Snapshot() ([]models.WorkoutSet, error) {
	return s.store.GetAllWorkoutSets()
}
