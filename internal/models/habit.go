package models

// Habit represents a single logged observation of a tracked habit.
// Rows are append-only: once inserted they are never updated or deleted.
type Habit struct {
	ID    int64  `json:"id"`
	Name  string `json:"habit"`
	Value int    `json:"value"`
	Date  string `json:"date"` // YYYY-MM-DD format
}
