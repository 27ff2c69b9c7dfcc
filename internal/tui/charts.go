package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/workout"
)

const (
	defaultChartWidth  = 72
	defaultChartHeight = 12
)

// RenderTrendChart renders the daily habit trend as a braille line chart,
// one dataset per habit. Shared by the TUI and CLI so both present the same
// picture.
func RenderTrendChart(points []habit.TrendPoint, width, height int) string {
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}

	chart := timeserieslinechart.New(width, height)

	// Stable palette assignment in first-seen order
	var names []string
	seen := make(map[string]bool)
	for _, p := range points {
		if !seen[p.Habit] {
			seen[p.Habit] = true
			names = append(names, p.Habit)
		}
	}
	for i, name := range names {
		chart.SetDataSetStyle(name, seriesStyle(i))
	}

	for _, p := range points {
		t, err := time.Parse(constants.DateFormat, p.Date)
		if err != nil {
			continue
		}
		chart.PushDataSet(p.Habit, timeserieslinechart.TimePoint{Time: t, Value: float64(p.Value)})
	}
	chart.DrawBrailleAll()

	var legend []string
	for i, name := range names {
		legend = append(legend, seriesStyle(i).Render("● "+name))
	}

	return strings.Join(legend, "  ") + "\n\n" + chart.View()
}

// RenderForecastChart renders a habit's actual values, rolling mean and
// flat forecast as three datasets of one line chart.
func RenderForecastChart(result habit.ForecastResult, width, height int) string {
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}

	chart := timeserieslinechart.New(width, height)
	chart.SetDataSetStyle("actual", seriesStyle(0))
	chart.SetDataSetStyle("smoothed", seriesStyle(1))
	chart.SetDataSetStyle("forecast", seriesStyle(2))

	push := func(name string, points []habit.ForecastPoint) {
		for _, p := range points {
			t, err := time.Parse(constants.DateFormat, p.Date)
			if err != nil {
				continue
			}
			chart.PushDataSet(name, timeserieslinechart.TimePoint{Time: t, Value: p.Value})
		}
	}
	push("actual", result.Actual)
	push("smoothed", result.Smoothed)
	push("forecast", result.Future)
	chart.DrawBrailleAll()

	legend := seriesStyle(0).Render("● actual") + "  " +
		seriesStyle(1).Render("● smoothed") + "  " +
		seriesStyle(2).Render("● forecast")

	title := chartTitleStyle.Render(fmt.Sprintf("%s (next %d days)", result.Habit, constants.ForecastHorizonDays))

	return title + "\n" + legend + "\n\n" + chart.View()
}

// RenderVolumeChart renders daily training volume over time.
func RenderVolumeChart(days []workout.DayVolume, width, height int) string {
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}

	chart := timeserieslinechart.New(width, height)
	for _, d := range days {
		t, err := time.Parse(constants.DateFormat, d.Date)
		if err != nil {
			continue
		}
		chart.Push(timeserieslinechart.TimePoint{Time: t, Value: d.Volume})
	}
	chart.DrawBraille()

	return chartTitleStyle.Render("Daily volume (kg)") + "\n\n" + chart.View()
}

// RenderCategoryChart renders the per-category volume breakdown as a bar
// chart, one bar per category present in the data.
func RenderCategoryChart(breakdown []workout.CategoryVolume, width, height int) string {
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}

	axisStyle := lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle := lipgloss.NewStyle().Foreground(colorSubtle)
	chart := barchart.New(width, height,
		barchart.WithStyles(axisStyle, labelStyle),
	)

	for i, cat := range breakdown {
		chart.Push(barchart.BarData{
			Label: cat.Category,
			Values: []barchart.BarValue{
				{Name: cat.Category, Value: cat.Volume, Style: seriesStyle(i)},
			},
		})
	}
	chart.Draw()

	return chartTitleStyle.Render("Volume by category (kg)") + "\n\n" + chart.View()
}
