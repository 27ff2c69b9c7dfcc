package models

import "sort"

// CategoryOther is the bucket for exercises missing from the catalog.
const CategoryOther = "Other"

// exerciseCategories maps each catalog exercise to its muscle-group
// category. Free-text exercises not listed here fall back to CategoryOther.
var exerciseCategories = map[string]string{
	"Squat":               "Legs",
	"Front Squat":         "Legs",
	"Leg Press":           "Legs",
	"Lunge":               "Legs",
	"Romanian Deadlift":   "Legs",
	"Deadlift":            "Back",
	"Barbell Row":         "Back",
	"Pull-Up":             "Back",
	"Lat Pulldown":        "Back",
	"Bench Press":         "Chest",
	"Incline Bench Press": "Chest",
	"Chest Fly":           "Chest",
	"Overhead Press":      "Shoulders",
	"Lateral Raise":       "Shoulders",
	"Biceps Curl":         "Arms",
	"Triceps Extension":   "Arms",
	"Plank":               "Core",
}

// CategoryFor returns the category of an exercise, or CategoryOther when
// the exercise is not in the catalog.
func CategoryFor(exercise string) string {
	if cat, ok := exerciseCategories[exercise]; ok {
		return cat
	}
	return CategoryOther
}

// CatalogExercises returns the fixed exercise catalog in alphabetical order,
// for presenting as select options.
func CatalogExercises() []string {
	exercises := make([]string, 0, len(exerciseCategories))
	for name := range exerciseCategories {
		exercises = append(exercises, name)
	}
	sort.Strings(exercises)
	return exercises
}
