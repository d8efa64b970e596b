package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/task"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), nil)
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	due := "2024-06-10"

	in := []task.Task{
		{Title: "Buy milk", Description: "2 liters", Category: "Errands", Completed: false, DueDate: &due},
		{Title: "File taxes", Description: "", Category: "General", Completed: true, DueDate: nil},
	}
	require.NoError(t, s.Save(in))

	got := s.Load()
	assert.Equal(t, in, got)

	// Saving what was loaded reproduces the same sequence again.
	require.NoError(t, s.Save(got))
	assert.Equal(t, in, s.Load())
}

func TestStore_AbsentDueDateIsExplicitNull(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]task.Task{{Title: "no due", Category: "General"}}))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"due_date": null`)
}

func TestStore_MissingFileLoadsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Load())
}

func TestStore_CorruptFileLoadsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{this is not json"), 0o644))
	assert.Empty(t, s.Load())

	// Not a sequence of records either.
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"title":"lone object"}`), 0o644))
	assert.Empty(t, s.Load())
}

func TestStore_LoadAppliesFieldDefaults(t *testing.T) {
	s := newTestStore(t)
	raw := `[{"title":"  padded  "},{"completed":true,"due_date":"2024-06-10"}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	got := s.Load()
	require.Len(t, got, 2)

	assert.Equal(t, "padded", got[0].Title)
	assert.Equal(t, task.DefaultCategory, got[0].Category)
	assert.False(t, got[0].Completed)
	assert.Nil(t, got[0].DueDate)

	assert.Equal(t, "", got[1].Title, "blank titles are tolerated on load")
	assert.True(t, got[1].Completed)
	require.NotNil(t, got[1].DueDate)
	assert.Equal(t, "2024-06-10", *got[1].DueDate)
}

func TestStore_SaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	s := New(path, nil)

	require.NoError(t, s.Save(nil))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}
