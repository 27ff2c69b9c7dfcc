package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/trackit/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := db.Ping(); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Ensure the schema exists. Safe to call on every start.
	if err := runMigrations(s.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trackit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddHabit(h models.Habit) error {
	_, err := s.db.Exec(
		"INSERT INTO habits (habit, value, date) VALUES (?, ?, ?)",
		h.Name, h.Value, h.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to append habit: %w", err)
	}
	return nil
}

// GetAllHabits returns every habit row in insertion order. The full table is
// small by design (single-user, manual entry), so there is no pagination.
func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query("SELECT id, habit, value, date FROM habits ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Value, &h.Date); err != nil {
			return nil, fmt.Errorf("failed to scan habit row: %w", err)
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// AddWorkoutSets appends every set of one submission in a single transaction.
// Either all rows of the batch are committed or none are.
func (s *SQLiteStore) AddWorkoutSets(sets []models.WorkoutSet) error {
	if len(sets) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin batch: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO workout_sets (date, exercise, set_num, reps, weight, note)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}
	defer stmt.Close()

	for i, set := range sets {
		if _, err := stmt.Exec(set.Date, set.Exercise, set.SetNum, set.Reps, set.Weight, set.Note); err != nil {
			return fmt.Errorf("failed to append set %d of %d: %w", i+1, len(sets), err)
		}
	}

	return tx.Commit()
}

// GetAllWorkoutSets returns every workout row in insertion order.
func (s *SQLiteStore) GetAllWorkoutSets() ([]models.WorkoutSet, error) {
	rows, err := s.db.Query(`
		SELECT id, date, exercise, set_num, reps, weight, note
		FROM workout_sets ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout sets: %w", err)
	}
	defer rows.Close()

	var sets []models.WorkoutSet
	for rows.Next() {
		var ws models.WorkoutSet
		if err := rows.Scan(&ws.ID, &ws.Date, &ws.Exercise, &ws.SetNum, &ws.Reps, &ws.Weight, &ws.Note); err != nil {
			return nil, fmt.Errorf("failed to scan workout row: %w", err)
		}
		sets = append(sets, ws)
	}

	return sets, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
