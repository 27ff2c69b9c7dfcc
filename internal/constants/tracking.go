package constants

const (
	// DateFormat is the calendar-date layout used everywhere a date is
	// persisted or parsed. Dates are stored as ISO 8601 strings.
	DateFormat = "2006-01-02"

	// RollingWindow is the trailing window (in samples) of the moving
	// average the habit forecast is built on. With fewer samples than the
	// window, the mean covers whatever is available.
	RollingWindow = 3

	// ForecastHorizonDays is how many consecutive future days the latest
	// smoothed value is projected for.
	ForecastHorizonDays = 7

	// WeeklyVolumeGoalKg is the weekly training volume target the goal
	// progress percentage is measured against.
	WeeklyVolumeGoalKg = 10000.0
)
