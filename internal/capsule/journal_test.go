package capsule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_capsule.txt")
	j := NewJournal(path)

	require.NoError(t, j.Save("2030-01-01", "hello future me"))
	require.NoError(t, j.Save("2031-06-15", "still at it"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01: hello future me\n2031-06-15: still at it\n", string(data))
}

func TestSaveDefaultsUnlockDateToToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_capsule.txt")
	j := NewJournal(path)

	require.NoError(t, j.Save("", "no date given"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today+": no date given\n", string(data))
}

func TestSaveKeepsColonsInMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_capsule.txt")
	j := NewJournal(path)

	require.NoError(t, j.Save("2030-01-01", "note: remember 10:30 meeting"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01: note: remember 10:30 meeting\n", string(data))
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "time_capsule.txt")
	j := NewJournal(path)

	require.NoError(t, j.Save("2030-01-01", "first entry"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
