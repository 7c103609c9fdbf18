package core

import (
	"errors"
	"time"

	"github.com/calvertf/sked/pkg/models"
)

// ErrTaskNotFound is returned when a name lookup matches no active task.
var ErrTaskNotFound = errors.New("task not found")

// Entry is one active task together with its ordering key. The
// (priority, deadline) pair is captured at insertion time and never
// re-keyed afterwards.
type Entry struct {
	Priority int
	Deadline time.Time
	Task     models.Task
}

// TaskStore holds every active (not yet completed) task. Entries are
// kept in insertion order; the store's natural comparison order is
// (priority ascending, deadline ascending), but consumers that need
// sorted output must order the snapshot themselves.
//
// Names are not required to be unique: duplicates are legal and the
// first match wins on lookup.
type TaskStore struct {
	entries []Entry
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Add inserts a task keyed by its (priority, deadline). It always
// succeeds and performs no duplicate check.
func (s *TaskStore) Add(task models.Task) {
	s.entries = append(s.entries, Entry{
		Priority: task.Priority,
		Deadline: task.Deadline,
		Task:     task,
	})
}

// RemoveByName removes the first entry whose task name equals name,
// scanning the store linearly in insertion order, and returns the
// removed task. If no entry matches, ErrTaskNotFound is returned and
// the store is unchanged.
func (s *TaskStore) RemoveByName(name string) (models.Task, error) {
	for i, e := range s.entries {
		if e.Task.Name == name {
			removed := e.Task
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return removed, nil
		}
	}
	return models.Task{}, ErrTaskNotFound
}

// Entries returns a read-only snapshot of the store in insertion order.
func (s *TaskStore) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of active tasks.
func (s *TaskStore) Len() int {
	return len(s.entries)
}
