package models

// WorkoutSet represents one set within a logged workout batch. A single
// submission produces one row per set, all sharing the same date and
// exercise, with SetNum numbered 1..n in submission order.
type WorkoutSet struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD format
	Exercise string  `json:"exercise"`
	SetNum   int     `json:"set_num"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"` // kg
	Note     string  `json:"note,omitempty"`
}

// Volume returns reps × weight, the training load metric every workout
// summary aggregates. It is derived, never persisted.
func (s WorkoutSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}
