package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/workout"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateTrend:
		content = m.viewTrend()
	case StateForecast:
		content = m.viewForecast()
	case StateWorkouts:
		content = m.viewWorkouts()
	case StateStats:
		content = m.viewStats()
	case StateCapsule:
		content = m.viewCapsule()
	case StateHabitForm, StateWorkoutForm, StateCapsuleForm, StateForecastPick:
		content = m.form.View()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		if m.statusIsErr {
			sections = append(sections, errorStyle.Render(m.statusMsg))
		} else {
			sections = append(sections, statusStyle.Render(m.statusMsg))
		}
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	if len(m.habitRows) == 0 {
		return docStyle.Render("No habits logged yet. Press 'a' to add one.")
	}
	return docStyle.Render(m.habitTable.View())
}

func (m Model) viewTrend() string {
	points := habit.DailyTrend(m.habitRows)
	if len(points) == 0 {
		return docStyle.Render("No habit data to chart yet.")
	}
	return docStyle.Render(RenderTrendChart(points, m.chartWidth(), defaultChartHeight))
}

func (m Model) viewForecast() string {
	if m.forecastHabit == "" {
		return docStyle.Render("Press enter to pick a habit to forecast.")
	}
	result := habit.Forecast(m.habitRows, m.forecastHabit)
	if len(result.Actual) == 0 {
		return docStyle.Render(fmt.Sprintf("No data available for forecasting %q.", m.forecastHabit))
	}
	return docStyle.Render(RenderForecastChart(result, m.chartWidth(), defaultChartHeight))
}

func (m Model) viewWorkouts() string {
	if len(m.workoutRows) == 0 {
		return docStyle.Render("No sets logged yet. Press 'a' to add some.")
	}
	return docStyle.Render(m.workoutTable.View())
}

func (m Model) viewStats() string {
	if len(m.workoutRows) == 0 {
		return docStyle.Render("Log a workout to see your stats.")
	}

	now := time.Now()
	weekly := workout.WeeklyVolume(m.workoutRows, now)
	monthly := workout.MonthlyVolume(m.workoutRows, now)
	progress := workout.GoalProgress(weekly)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.1f kg\n", statLabelStyle.Render("Weekly volume:"), weekly)
	fmt.Fprintf(&b, "%s %.1f kg\n", statLabelStyle.Render("Monthly volume:"), monthly)
	fmt.Fprintf(&b, "%s %.1f%%\n\n", statLabelStyle.Render("Weekly goal:"), progress)

	for _, r := range workout.PersonalRecords(m.workoutRows) {
		fmt.Fprintf(&b, "  PR  %-22s %.1f kg\n", r.Exercise, r.MaxWeight)
	}
	b.WriteString("\n")

	b.WriteString(RenderCategoryChart(workout.CategoryBreakdown(m.workoutRows), m.chartWidth(), defaultChartHeight))
	b.WriteString("\n")
	b.WriteString(RenderVolumeChart(workout.DailyVolume(m.workoutRows), m.chartWidth(), defaultChartHeight))

	return docStyle.Render(b.String())
}

func (m Model) viewCapsule() string {
	var b strings.Builder
	b.WriteString("Leave a note for your future self. Press 'a' to write one.\n\n")
	fmt.Fprintf(&b, "Entries are appended to %s", m.capsule.Path())
	return docStyle.Render(b.String())
}

func (m Model) chartWidth() int {
	if m.width > 8 && m.width-8 < defaultChartWidth {
		return m.width - 8
	}
	return defaultChartWidth
}
