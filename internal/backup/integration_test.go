package backup

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/trackit/internal/models"
	"github.com/julianstephens/trackit/internal/storage"
)

// TestBackupRestoreWorkflow drives the full cycle against a real store:
// init schema, log records, back up, log more, restore, verify.
func TestBackupRestoreWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "trackit.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	if err := store.AddHabit(models.Habit{Name: "water", Value: 8, Date: "2024-01-01"}); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if err := store.AddWorkoutSets([]models.WorkoutSet{
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 1, Reps: 5, Weight: 100},
		{Date: "2024-01-01", Exercise: "Squat", SetNum: 2, Reps: 5, Weight: 100},
	}); err != nil {
		t.Fatalf("failed to add workout sets: %v", err)
	}

	mgr := NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// More writes after the backup.
	if err := store.AddHabit(models.Habit{Name: "sleep", Value: 7, Date: "2024-01-02"}); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := storage.NewSQLiteStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to load restored store: %v", err)
	}
	defer restored.Close()

	habits, err := restored.GetAllHabits()
	if err != nil {
		t.Fatalf("failed to read habits: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("expected 1 habit after restore, got %d", len(habits))
	}
	if habits[0].Name != "water" {
		t.Errorf("expected the pre-backup habit, got %q", habits[0].Name)
	}

	sets, err := restored.GetAllWorkoutSets()
	if err != nil {
		t.Fatalf("failed to read workout sets: %v", err)
	}
	if len(sets) != 2 {
		t.Errorf("expected 2 workout sets after restore, got %d", len(sets))
	}
}

func TestBackupDirectoryCreation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Dir(mgr.BackupDir()) != filepath.Dir(dbPath) {
		t.Errorf("backup dir %s is not next to the database %s", mgr.BackupDir(), dbPath)
	}
}
