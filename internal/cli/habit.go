package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/tui"
)

type HabitLogCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Value int    `arg:"" help:"Value for the day (e.g. glasses, minutes, reps)."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitLogCmd) Validate() error {
	if c.Value < 0 {
		return fmt.Errorf("value must be >= 0")
	}
	return nil
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Habits.Log(c.Name, c.Value, date); err != nil {
		if errors.Is(err, habit.ErrEmptyHabit) {
			return fmt.Errorf("nothing saved: %w", err)
		}
		return err
	}

	fmt.Printf("Saved: %s - %d on %s\n", c.Name, c.Value, date)
	return nil
}

type HabitRecordsCmd struct{}

func (c *HabitRecordsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rows, err := ctx.Habits.Snapshot()
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No habit records yet. Log one with 'trackit habit log'.")
		return nil
	}

	fmt.Printf("%-5s %-20s %8s  %s\n", "ID", "HABIT", "VALUE", "DATE")
	for _, r := range rows {
		fmt.Printf("%-5d %-20s %8d  %s\n", r.ID, r.Name, r.Value, r.Date)
	}

	return nil
}

type HabitTrendCmd struct {
	Chart bool `help:"Render the trend as a chart instead of a table."`
}

func (c *HabitTrendCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rows, err := ctx.Habits.Snapshot()
	if err != nil {
		return err
	}

	trend := habit.DailyTrend(rows)
	if len(trend) == 0 {
		fmt.Println("No data to visualize yet.")
		return nil
	}

	if c.Chart {
		fmt.Println(tui.RenderTrendChart(trend, 0, 0))
		return nil
	}

	fmt.Printf("%-12s %-20s %8s\n", "DATE", "HABIT", "VALUE")
	for _, p := range trend {
		fmt.Printf("%-12s %-20s %8d\n", p.Date, p.Habit, p.Value)
	}

	return nil
}

type HabitForecastCmd struct {
	Name  string `arg:"" help:"Habit to forecast."`
	Chart bool   `help:"Render actual, smoothed and forecast series as a chart."`
}

func (c *HabitForecastCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rows, err := ctx.Habits.Snapshot()
	if err != nil {
		return err
	}

	result := habit.Forecast(rows, c.Name)
	if len(result.Actual) == 0 {
		fmt.Printf("No data available for forecasting %q.\n", c.Name)
		return nil
	}

	if c.Chart {
		fmt.Println(tui.RenderForecastChart(result, 0, 0))
		return nil
	}

	fmt.Printf("%s forecast (next %d days):\n\n", result.Habit, len(result.Future))
	fmt.Printf("%-12s %10s %10s\n", "DATE", "VALUE", "SMOOTHED")
	for i, p := range result.Actual {
		fmt.Printf("%-12s %10.0f %10.2f\n", p.Date, p.Value, result.Smoothed[i].Value)
	}
	fmt.Println()
	for _, p := range result.Future {
		fmt.Printf("%-12s %10s %10.2f  (forecast)\n", p.Date, "-", p.Value)
	}

	return nil
}
