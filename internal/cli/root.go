package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/trackit/internal/backup"
	"github.com/julianstephens/trackit/internal/capsule"
	"github.com/julianstephens/trackit/internal/constants"
	"github.com/julianstephens/trackit/internal/habit"
	"github.com/julianstephens/trackit/internal/storage"
	"github.com/julianstephens/trackit/internal/workout"
)

type Context struct {
	Store    storage.Provider
	Habits   *habit.Service
	Workouts *workout.Service
	Capsule  *capsule.Journal
}

// PerformAutomaticBackup creates a backup of the database, logging failures
// without blocking the caller. Used on TUI startup.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// confirm prints a y/N prompt and reads one answer line from stdin.
// Anything other than "y" or "yes" counts as no.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}

	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}

// resolveDate turns "today" or an empty string into today's date and
// validates anything else as YYYY-MM-DD.
func resolveDate(s string) (string, error) {
	if s == "" || s == "today" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return s, nil
}
