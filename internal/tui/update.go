package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/workout"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inForm() {
			return m.updateForm(msg)
		}
		return m.updateTabs(msg)
	}

	if m.inForm() {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) inForm() bool {
	switch m.state {
	case StateHabitForm, StateWorkoutForm, StateCapsuleForm, StateForecastPick:
		return true
	}
	return false
}

func (m Model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.openFormForTab()

	case key.Matches(msg, m.keys.Enter):
		if m.state == StateForecast {
			return m.openForecastPick()
		}
	}

	// Arrow keys and the rest go to the focused table.
	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitTable, cmd = m.habitTable.Update(msg)
	case StateWorkouts:
		m.workoutTable, cmd = m.workoutTable.Update(msg)
	}
	return m, cmd
}

func (m Model) openFormForTab() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateHabits, StateTrend, StateForecast:
		m.previousState = m.state
		m.state = StateHabitForm
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
	case StateWorkouts, StateStats:
		m.previousState = m.state
		m.state = StateWorkoutForm
		m.workoutForm = &WorkoutFormModel{}
		m.form = NewWorkoutForm(m.workoutForm)
	case StateCapsule:
		m.previousState = m.state
		m.state = StateCapsuleForm
		m.capsuleForm = &CapsuleFormModel{}
		m.form = NewCapsuleForm(m.capsuleForm)
	default:
		return m, nil
	}
	m.statusMsg = ""
	return m, m.form.Init()
}

func (m Model) openForecastPick() (tea.Model, tea.Cmd) {
	habits := habit.Habits(m.habitRows)
	if len(habits) == 0 {
		m.statusMsg = "log a habit first"
		m.statusIsErr = true
		return m, nil
	}
	m.previousState = m.state
	m.state = StateForecastPick
	m.forecastPick = &ForecastPickModel{}
	m.form = NewForecastPickForm(m.forecastPick, habits)
	m.statusMsg = ""
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.state = m.previousState
		return m, nil

	case huh.StateCompleted:
		return m.submitForm()
	}

	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var err error

	switch m.state {
	case StateHabitForm:
		value, convErr := strconv.Atoi(strings.TrimSpace(m.habitForm.Value))
		if convErr != nil {
			err = convErr
			break
		}
		if err = m.habits.Log(m.habitForm.Name, value, m.habitForm.Date); err == nil {
			m.statusMsg = fmt.Sprintf("Logged habit %q", strings.TrimSpace(m.habitForm.Name))
		}

	case StateWorkoutForm:
		var sets []workout.SetInput
		sets, err = buildSets(m.workoutForm)
		if err != nil {
			break
		}
		if err = m.workouts.LogBatch(m.workoutForm.Exercise, m.workoutForm.Date, sets); err == nil {
			m.statusMsg = fmt.Sprintf("Logged %d set(s) of %s", len(sets), m.workoutForm.Exercise)
		}

	case StateCapsuleForm:
		if err = m.capsule.Save(m.capsuleForm.Unlock, m.capsuleForm.Message); err == nil {
			m.statusMsg = "Time capsule saved!"
		}

	case StateForecastPick:
		m.forecastHabit = m.forecastPick.Habit
		m.statusMsg = ""
	}

	if err != nil {
		m.statusMsg = err.Error()
		m.statusIsErr = true
		m.form.State = huh.StateNormal
		return m, nil
	}

	m.statusIsErr = false
	m.refresh()
	m.state = m.previousState
	return m, nil
}

// buildSets expands the comma-separated form fields into one input per set.
// A single weight applies to every set, mirroring the CLI flags.
func buildSets(fm *WorkoutFormModel) ([]workout.SetInput, error) {
	reps, err := parseIntList(fm.Reps)
	if err != nil {
		return nil, err
	}
	weights, err := parseFloatList(fm.Weights)
	if err != nil {
		return nil, err
	}
	if len(weights) == 1 && len(reps) > 1 {
		w := weights[0]
		weights = make([]float64, len(reps))
		for i := range weights {
			weights[i] = w
		}
	}
	if len(weights) != len(reps) {
		return nil, fmt.Errorf("got %d reps but %d weights", len(reps), len(weights))
	}

	sets := make([]workout.SetInput, len(reps))
	for i := range reps {
		sets[i] = workout.SetInput{Reps: reps[i], Weight: weights[i], Note: strings.TrimSpace(fm.Note)}
	}
	return sets, nil
}
