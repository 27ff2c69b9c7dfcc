package habit

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/models"
	"github.com/julianstephens/trackit/internal/storage"
)

// ErrEmptyHabit is returned when a submission carries no habit name. The
// presenter is expected to suppress such submissions before they reach the
// writer; this is the backstop.
var ErrEmptyHabit = errors.New("habit name must not be empty")

// Service translates one user submission into a single store append.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Log appends one habit observation. An empty date defaults to today.
func (s *Service) Log(name string, value int, date string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyHabit
	}
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	if err := s.store.AddHabit(models.Habit{Name: name, Value: value, Date: date}); err != nil {
		return err
	}

	slog.Debug("logged habit", "habit", name, "value", value, "date", date)
	return nil
}

// Snapshot loads the full habit log in insertion order.
func (s *Service) Snapshot() ([]models.Habit, error) {
	return s.store.GetAllHabits()
}
