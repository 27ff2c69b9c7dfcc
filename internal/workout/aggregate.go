package workout

import (
	"sort"
	"time"

	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/models"
)

// Summary aggregates all sets of one exercise.
type Summary struct {
	Exercise    string
	TotalSets   int
	TotalReps   int
	TotalVolume float64
}

// Record is the heaviest weight ever logged for one exercise.
type Record struct {
	Exercise  string
	MaxWeight float64
}

// CategoryVolume is the summed volume of one muscle-group category.
type CategoryVolume struct {
	Category string
	Volume   float64
}

// DayVolume is the summed volume of one calendar date.
type DayVolume struct {
	Date   string
	Volume float64
}

// WeeklyVolume sums the volume of rows whose ISO calendar week matches that
// of now.
func WeeklyVolume(rows []models.WorkoutSet, now time.Time) float64 {
	nowYear, nowWeek := now.ISOWeek()

	var total float64
	for _, r := range rows {
		d, err := time.Parse(constants.DateFormat, r.Date)
		if err != nil {
			continue
		}
		if year, week := d.ISOWeek(); year == nowYear && week == nowWeek {
			total += r.Volume()
		}
	}
	return total
}

// MonthlyVolume sums the volume of rows whose calendar month number matches
// that of now. The year is deliberately not compared: rows from a different
// year but the same month number are included. This mirrors the behavior of
// the original dashboard and is a documented limitation.
func MonthlyVolume(rows []models.WorkoutSet, now time.Time) float64 {
	var total float64
	for _, r := range rows {
		d, err := time.Parse(constants.DateFormat, r.Date)
		if err != nil {
			continue
		}
		if d.Month() == now.Month() {
			total += r.Volume()
		}
	}
	return total
}

// GoalProgress converts a weekly volume into a percentage of the weekly
// goal, capped at 100.
func GoalProgress(weeklyVolume float64) float64 {
	progress := weeklyVolume / constants.WeeklyVolumeGoalKg
	if progress > 1.0 {
		progress = 1.0
	}
	return progress * 100
}

// PersonalRecords returns the max weight per exercise, ordered by exercise
// name. Exercises absent from the snapshot produce no record.
func PersonalRecords(rows []models.WorkoutSet) []Record {
	best := make(map[string]float64)
	for _, r := range rows {
		// Presence matters: an exercise logged only at weight 0 still gets
		// a record, so the lookup cannot rely on the map's zero value.
		if cur, ok := best[r.Exercise]; !ok || r.Weight > cur {
			best[r.Exercise] = r.Weight
		}
	}

	records := make([]Record, 0, len(best))
	for exercise, weight := range best {
		records = append(records, Record{Exercise: exercise, MaxWeight: weight})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Exercise < records[j].Exercise })
	return records
}

// CategoryBreakdown maps each row's exercise to its category and sums volume
// per category, ordered by category name. Unmapped exercises land in the
// "Other" bucket.
func CategoryBreakdown(rows []models.WorkoutSet) []CategoryVolume {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[models.CategoryFor(r.Exercise)] += r.Volume()
	}

	breakdown := make([]CategoryVolume, 0, len(sums))
	for category, volume := range sums {
		breakdown = append(breakdown, CategoryVolume{Category: category, Volume: volume})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Category < breakdown[j].Category })
	return breakdown
}

// ExerciseSummaries groups the snapshot by exercise and counts sets, reps
// and volume, ordered by exercise name.
func ExerciseSummaries(rows []models.WorkoutSet) []Summary {
	sums := make(map[string]*Summary)
	for _, r := range rows {
		s, ok := sums[r.Exercise]
		if !ok {
			s = &Summary{Exercise: r.Exercise}
			sums[r.Exercise] = s
		}
		s.TotalSets++
		s.TotalReps += r.Reps
		s.TotalVolume += r.Volume()
	}

	summaries := make([]Summary, 0, len(sums))
	for _, s := range sums {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Exercise < summaries[j].Exercise })
	return summaries
}

// DailyVolume sums volume per date, ordered by date ascending. ISO dates
// sort correctly as strings.
func DailyVolume(rows []models.WorkoutSet) []DayVolume {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[r.Date] += r.Volume()
	}

	days := make([]DayVolume, 0, len(sums))
	for date, volume := range sums {
		days = append(days, DayVolume{Date: date, Volume: volume})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
