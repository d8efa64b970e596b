// Package store persists the task sequence to a single JSON file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"todolist/internal/task"
)

// Store reads and writes the whole task sequence in one file. There is no
// batching and no locking: one process, one user, one file.
type Store struct {
	path   string
	logger *log.Logger
}

func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted sequence. A missing, empty, or unparseable file
// degrades to an empty list — silent recovery, never an error to the caller.
func (s *Store) Load() []task.Task {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("task file unreadable, starting empty", "path", s.path, "err", err)
		}
		return nil
	}

	var recs []task.Record
	if err := json.Unmarshal(b, &recs); err != nil {
		s.logger.Warn("task file corrupt, starting empty", "path", s.path, "err", err)
		return nil
	}

	out := make([]task.Task, 0, len(recs))
	for _, rec := range recs {
		out = append(out, task.FromRecord(rec))
	}
	return out
}

// Save overwrites the file with the full sequence. An absent due date is
// written as an explicit null so the round trip is unambiguous.
func (s *Store) Save(tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.logger.Error("save tasks", "path", s.path, "err", err)
		return err
	}
	return nil
}
