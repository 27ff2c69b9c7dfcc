package capsule

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/trackit/internal/constants"
)

// Journal is a write-only dated text log, decoupled from the tabular store.
// Each save appends one line; the file is created on first write and never
// truncated or rotated. There is no structured read-back.
type Journal struct {
	path string
}

func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Save appends "<unlock date>: <message>\n" to the journal. The message may
// itself contain colons; nothing is escaped. An empty unlock date defaults
// to today.
func (j *Journal) Save(unlockDate, message string) error {
	if unlockDate == "" {
		unlockDate = time.Now().Format(constants.DateFormat)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0700); err != nil {
		return fmt.Errorf("failed to create capsule directory: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open capsule log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s: %s\n", unlockDate, message); err != nil {
		return fmt.Errorf("failed to append capsule entry: %w", err)
	}

	return nil
}

// Path returns the location of the journal file.
func (j *Journal) Path() string {
	return j.path
}
