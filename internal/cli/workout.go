package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/trackit/internal/tui"
	"github.com/julianstephens/trackit/internal/workout"
)

type WorkoutLogCmd struct {
	Exercise string    `arg:"" help:"Exercise name (catalog or free text)."`
	Reps     []int     `short:"r" help:"Reps per set, comma-separated (e.g. 5,5,5)." required:""`
	Weight   []float64 `short:"w" help:"Weight in kg per set; a single value applies to every set." required:""`
	Note     string    `short:"n" help:"Optional note applied to each set."`
	Date     string    `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *WorkoutLogCmd) Validate() error {
	if len(c.Weight) != 1 && len(c.Weight) != len(c.Reps) {
		return fmt.Errorf("expected 1 or %d weights, got %d", len(c.Reps), len(c.Weight))
	}
	for _, r := range c.Reps {
		if r < 0 {
			return fmt.Errorf("reps must be >= 0")
		}
	}
	for _, w := range c.Weight {
		if w < 0 {
			return fmt.Errorf("weight must be >= 0")
		}
	}
	return nil
}

func (c *WorkoutLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	sets := make([]workout.SetInput, len(c.Reps))
	for i, reps := range c.Reps {
		weight := c.Weight[0]
		if len(c.Weight) > 1 {
			weight = c.Weight[i]
		}
		sets[i] = workout.SetInput{Reps: reps, Weight: weight, Note: c.Note}
	}

	if err := ctx.Workouts.LogBatch(c.Exercise, date, sets); err != nil {
		if errors.Is(err, workout.ErrEmptyExercise) {
			return fmt.Errorf("nothing saved: %w", err)
		}
		return err
	}

	fmt.Printf("Saved: %s, %d sets on %s\n", c.Exercise, len(sets), date)
	return nil
}

type WorkoutRecordsCmd struct{}

func (c *WorkoutRecordsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rows, err := ctx.Workouts.Snapshot()
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No workout records yet. Log one with 'trackit workout log'.")
		return nil
	}

	fmt.Printf("%-5s %-12s %-20s %4s %5s %8s %10s  %s\n",
		"ID", "DATE", "EXERCISE", "SET", "REPS", "WEIGHT", "VOLUME", "NOTE")
	for _, r := range rows {
		fmt.Printf("%-5d %-12s %-20s %4d %5d %8.1f %10.1f  %s\n",
			r.ID, r.Date, r.Exercise, r.SetNum, r.Reps, r.Weight, r.Volume(), r.Note)
	}

	return nil
}

type WorkoutSummaryCmd struct {
	Chart bool `help:"Render daily volume and category breakdown as charts."`
}

func (c *WorkoutSummaryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rows, err := ctx.Workouts.Snapshot()
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No workout records yet. Log one with 'trackit workout log'.")
		return nil
	}

	now := time.Now()
	weekly := workout.WeeklyVolume(rows, now)

	fmt.Printf("Weekly volume:   %10.1f kg\n", weekly)
	fmt.Printf("Monthly volume:  %10.1f kg\n", workout.MonthlyVolume(rows, now))
	fmt.Printf("Weekly goal:     %10.1f %%\n\n", workout.GoalProgress(weekly))

	fmt.Println("Per-exercise summary:")
	fmt.Printf("%-20s %6s %8s %12s\n", "EXERCISE", "SETS", "REPS", "VOLUME")
	for _, s := range workout.ExerciseSummaries(rows) {
		fmt.Printf("%-20s %6d %8d %12.1f\n", s.Exercise, s.TotalSets, s.TotalReps, s.TotalVolume)
	}
	fmt.Println()

	if c.Chart {
		fmt.Println(tui.RenderVolumeChart(workout.DailyVolume(rows), 0, 0))
		fmt.Println(tui.RenderCategoryChart(workout.CategoryBreakdown(rows), 0, 0))
		return nil
	}

	fmt.Println("Category breakdown:")
	fmt.Printf("%-12s %12s\n", "CATEGORY", "VOLUME")
	for _, cat := range workout.CategoryBreakdown(rows) {
		fmt.Printf("%-12s %12.1f\n", cat.Category, cat.Volume)
	}

	return nil
}

type WorkoutPrsCmd struct{}

func (c *WorkoutPrsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rows, err := ctx.Workouts.Snapshot()
	if err != nil {
		return err
	}

	records := workout.PersonalRecords(rows)
	if len(records) == 0 {
		fmt.Println("No personal records yet.")
		return nil
	}

	fmt.Println("Personal records:")
	fmt.Printf("%-20s %10s\n", "EXERCISE", "MAX KG")
	for _, r := range records {
		fmt.Printf("%-20s %10.1f\n", r.Exercise, r.MaxWeight)
	}

	return nil
}
