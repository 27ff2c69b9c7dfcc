package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trackit/internal/capsule"
	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/models"
	"github.com/julianstephens/trackit/internal/storage"
	"github.com/julianstephens/trackit/internal/workout"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateTrend
	StateForecast
	StateWorkouts
	StateStats
	StateCapsule
	StateHabitForm
	StateWorkoutForm
	StateCapsuleForm
	StateForecastPick
)

// tabCount covers the browsable tabs; form states sit outside the cycle.
const tabCount = 6

var tabTitles = []string{"Habits", "Trend", "Forecast", "Workouts", "Stats", "Capsule"}

type HabitFormModel struct {
	Name  string
	Value string
	Date  string
}

type WorkoutFormModel struct {
	Exercise string
	Reps     string
	Weights  string
	Note     string
	Date     string
}

type CapsuleFormModel struct {
	Message string
	Unlock  string
}

type ForecastPickModel struct {
	Habit string
}

type Model struct {
	store    storage.Provider
	habits   *habit.Service
	workouts *workout.Service
	capsule  *capsule.Journal

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habitRows    []models.Habit
	workoutRows  []models.WorkoutSet
	habitTable   table.Model
	workoutTable table.Model

	form         *huh.Form
	habitForm    *HabitFormModel
	workoutForm  *WorkoutFormModel
	capsuleForm  *CapsuleFormModel
	forecastPick *ForecastPickModel

	forecastHabit string
	statusMsg     string
	statusIsErr   bool
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider, habits *habit.Service, workouts *workout.Service, journal *capsule.Journal) Model {
	m := Model{
		store:    store,
		habits:   habits,
		workouts: workouts,
		capsule:  journal,
		state:    StateHabits,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}

	m.habitTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Habit", Width: 20},
			{Title: "Value", Width: 8},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	m.workoutTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Date", Width: 12},
			{Title: "Exercise", Width: 20},
			{Title: "Set", Width: 4},
			{Title: "Reps", Width: 5},
			{Title: "Kg", Width: 8},
			{Title: "Volume", Width: 10},
			{Title: "Note", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m.refresh()
	return m
}

// refresh reloads the full snapshot from the store and rebuilds the derived
// table rows. Called once at startup and after every successful submit, so
// every view reflects the last committed write. A failing load is reported
// through the status line; the previous rows stay on screen.
func (m *Model) refresh() {
	habitRows, err := m.habits.Snapshot()
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load habits: %v", err)
		m.statusIsErr = true
		return
	}
	workoutRows, err := m.workouts.Snapshot()
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to load workouts: %v", err)
		m.statusIsErr = true
		return
	}
	m.habitRows = habitRows
	m.workoutRows = workoutRows

	habitTableRows := make([]table.Row, 0, len(m.habitRows))
	for _, r := range m.habitRows {
		habitTableRows = append(habitTableRows, table.Row{
			fmt.Sprintf("%d", r.ID), r.Name, fmt.Sprintf("%d", r.Value), r.Date,
		})
	}
	m.habitTable.SetRows(habitTableRows)

	workoutTableRows := make([]table.Row, 0, len(m.workoutRows))
	for _, r := range m.workoutRows {
		workoutTableRows = append(workoutTableRows, table.Row{
			fmt.Sprintf("%d", r.ID), r.Date, r.Exercise,
			fmt.Sprintf("%d", r.SetNum), fmt.Sprintf("%d", r.Reps),
			fmt.Sprintf("%.1f", r.Weight), fmt.Sprintf("%.1f", r.Volume()), r.Note,
		})
	}
	m.workoutTable.SetRows(workoutTableRows)
}

func (m Model) Init() tea.Cmd {
	return nil
}
