package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/trackit/internal/models"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output file (defaults to stdout)." type:"path"`
}

// exportDump is the JSON shape of a full export: both append-only logs,
// each in insertion order.
type exportDump struct {
	Habits      []models.Habit      `json:"habits"`
	WorkoutSets []models.WorkoutSet `json:"workout_sets"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	sets, err := ctx.Store.GetAllWorkoutSets()
	if err != nil {
		return err
	}

	dump := exportDump{Habits: habits, WorkoutSets: sets}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	data = append(data, '\n')

	if c.Out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("Exported %d habit rows and %d workout rows to %s\n", len(habits), len(sets), c.Out)
	return nil
}
