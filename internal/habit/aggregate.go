package habit

import (
	"sort"
	"time"

	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/models"
)

// TrendPoint is one (date, habit) bucket of the daily trend: the summed
// value for that habit on that date.
type TrendPoint struct {
	Date  string
	Habit string
	Value int
}

// ForecastPoint is one dated value of a forecast series.
type ForecastPoint struct {
	Date  string
	Value float64
}

// ForecastResult holds the observed series for one habit, its rolling mean,
// and the flat projection for the coming days.
type ForecastResult struct {
	Habit    string
	Actual   []ForecastPoint
	Smoothed []ForecastPoint
	Future   []ForecastPoint
}

// Habits returns the distinct habit names of a snapshot in first-seen order.
func Habits(rows []models.Habit) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range rows {
		if !seen[r.Name] {
			seen[r.Name] = true
			names = append(names, r.Name)
		}
	}
	return names
}

// DailyTrend groups a snapshot by (date, habit) and sums values. The result
// is ordered by date, then habit name, one point per pair that occurs in the
// data. An empty snapshot yields an empty result.
func DailyTrend(rows []models.Habit) []TrendPoint {
	type bucket struct {
		date  string
		habit string
	}

	sums := make(map[bucket]int)
	for _, r := range rows {
		sums[bucket{r.Date, r.Name}] += r.Value
	}

	points := make([]TrendPoint, 0, len(sums))
	for b, v := range sums {
		points = append(points, TrendPoint{Date: b.date, Habit: b.habit, Value: v})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Date != points[j].Date {
			return points[i].Date < points[j].Date
		}
		return points[i].Habit < points[j].Habit
	})

	return points
}

// RollingMean returns the trailing arithmetic mean of up to window samples
// ending at each index. With fewer samples than the window, the mean covers
// whatever is available, so a single sample is its own mean.
func RollingMean(values []int, window int) []float64 {
	if window < 1 {
		window = 1
	}

	means := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0
		for _, v := range values[start : i+1] {
			sum += v
		}
		means[i] = float64(sum) / float64(i+1-start)
	}
	return means
}

// Forecast builds the forecast series for one habit: its rows sorted by
// date, the trailing rolling mean over them, and the latest smoothed value
// projected unchanged for the next seven calendar days. This is a flat
// extrapolation, not a model. Rows for other habits never affect the result.
// With no observations for the habit, all series are empty.
func Forecast(rows []models.Habit, habitName string) ForecastResult {
	result := ForecastResult{Habit: habitName}

	var subset []models.Habit
	for _, r := range rows {
		if r.Name == habitName {
			subset = append(subset, r)
		}
	}
	if len(subset) == 0 {
		return result
	}

	// Stable sort keeps insertion order within a date, matching the order
	// values were observed.
	sort.SliceStable(subset, func(i, j int) bool {
		return subset[i].Date < subset[j].Date
	})

	values := make([]int, len(subset))
	for i, r := range subset {
		values[i] = r.Value
	}
	means := RollingMean(values, constants.RollingWindow)

	for i, r := range subset {
		result.Actual = append(result.Actual, ForecastPoint{Date: r.Date, Value: float64(r.Value)})
		result.Smoothed = append(result.Smoothed, ForecastPoint{Date: r.Date, Value: means[i]})
	}

	lastDate, err := time.Parse(constants.DateFormat, subset[len(subset)-1].Date)
	if err != nil {
		// An unparsable date cannot anchor a projection; return what we have.
		return result
	}

	lastMean := means[len(means)-1]
	for i := 1; i <= constants.ForecastHorizonDays; i++ {
		result.Future = append(result.Future, ForecastPoint{
			Date:  lastDate.AddDate(0, 0, i).Format(constants.DateFormat),
			Value: lastMean,
		})
	}

	return result
}
