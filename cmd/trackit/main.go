package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/trackit/internal/capsule"
	"github.com/julianstephens/trackit/internal/cli"
	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/logging"
	"github.com/julianstephens/trackit/internal/storage"
	"github.com/julianstephens/trackit/internal/workout"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Database file path." type:"path" default:"~/.config/trackit/trackit.db"`
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info"`

	Init  cli.InitCmd `cmd:"" help:"Initialize trackit storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit struct {
		Log      cli.HabitLogCmd      `cmd:"" help:"Log a habit observation."`
		Records  cli.HabitRecordsCmd  `cmd:"" help:"List all habit records."`
		Trend    cli.HabitTrendCmd    `cmd:"" help:"Show daily totals per habit."`
		Forecast cli.HabitForecastCmd `cmd:"" help:"Forecast a habit's next week."`
	} `cmd:"" help:"Track daily habits."`
	Workout struct {
		Log     cli.WorkoutLogCmd     `cmd:"" help:"Log a multi-set workout."`
		Records cli.WorkoutRecordsCmd `cmd:"" help:"List all logged sets."`
		Summary cli.WorkoutSummaryCmd `cmd:"" help:"Show volume, goal progress and per-exercise stats."`
		Prs     cli.WorkoutPrsCmd     `cmd:"" help:"Show personal records."`
	} `cmd:"" help:"Track workouts."`
	Capsule struct {
		Save cli.CapsuleSaveCmd `cmd:"" help:"Save a message to your future self."`
	} `cmd:"" help:"Time capsule."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run environment health checks."`
	Export cli.ExportCmd `cmd:"" help:"Export all records as JSON."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trackit"),
		kong.Description("Habit and workout tracker with append-only logs"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logging.Setup(CLI.LogLevel)

	store := storage.NewSQLiteStore(CLI.Config)
	appCtx := &cli.Context{
		Store:    store,
		Habits:   habit.NewService(store),
		Workouts: workout.NewService(store),
		Capsule:  capsule.NewJournal(filepath.Join(filepath.Dir(CLI.Config), "time_capsule.txt")),
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
