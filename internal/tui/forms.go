package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/models"
)

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date, use YYYY-MM-DD")
	}
	return nil
}

// NewHabitForm creates the form for logging one habit observation.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Value").
				Value(&fm.Value).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 0 {
						return fmt.Errorf("value must be >= 0")
					}
					return nil
				}),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Date).
				Validate(validateDate),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewWorkoutForm creates the form for logging one multi-set workout batch.
func NewWorkoutForm(fm *WorkoutFormModel) *huh.Form {
	var exerciseOptions []huh.Option[string]
	for _, name := range models.CatalogExercises() {
		exerciseOptions = append(exerciseOptions, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Exercise").
				Options(exerciseOptions...).
				Value(&fm.Exercise),
			huh.NewInput().
				Title("Reps per set").
				Description("Comma-separated, one entry per set (e.g. 5,5,5)").
				Value(&fm.Reps).
				Validate(func(s string) error {
					_, err := parseIntList(s)
					return err
				}),
			huh.NewInput().
				Title("Weight per set (kg)").
				Description("Comma-separated; a single value applies to every set").
				Value(&fm.Weights).
				Validate(func(s string) error {
					_, err := parseFloatList(s)
					return err
				}),
			huh.NewInput().
				Title("Note").
				Description("Optional").
				Value(&fm.Note),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Date).
				Validate(validateDate),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewCapsuleForm creates the form for writing a time-capsule entry.
func NewCapsuleForm(fm *CapsuleFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Write a message to your future self").
				Value(&fm.Message).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("message cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Unlock date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Unlock).
				Validate(validateDate),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewForecastPickForm creates the habit selector for the forecast tab.
func NewForecastPickForm(fm *ForecastPickModel, habits []string) *huh.Form {
	var options []huh.Option[string]
	for _, name := range habits {
		options = append(options, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a habit to forecast").
				Options(options...).
				Value(&fm.Habit),
		),
	).WithTheme(huh.ThemeDracula())
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", part)
		}
		if v < 0 {
			return nil, fmt.Errorf("values must be >= 0")
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one value required")
	}
	return values, nil
}

func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", part)
		}
		if v < 0 {
			return nil, fmt.Errorf("values must be >= 0")
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one value required")
	}
	return values, nil
}
