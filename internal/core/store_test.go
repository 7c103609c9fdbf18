package core

import (
	"errors"
	"testing"
	"time"

	"github.com/calvertf/sked/pkg/models"
)

func storeTask(name string, priority int, deadline time.Time) models.Task {
	return models.Task{
		Name:     name,
		Type:     models.TaskTypeAcademic,
		Deadline: deadline,
		Priority: priority,
		Duration: 30,
	}
}

func TestTaskStore_AddAndLen(t *testing.T) {
	s := NewTaskStore()
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}

	now := time.Now()
	s.Add(storeTask("a", 1, now))
	s.Add(storeTask("b", 2, now))

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
}

func TestTaskStore_EntryCapturesKey(t *testing.T) {
	s := NewTaskStore()
	deadline := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Add(storeTask("a", 7, deadline))

	entries := s.Entries()
	if entries[0].Priority != 7 {
		t.Errorf("expected priority 7, got %d", entries[0].Priority)
	}
	if !entries[0].Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, entries[0].Deadline)
	}
}

func TestTaskStore_RemoveByName(t *testing.T) {
	s := NewTaskStore()
	now := time.Now()
	s.Add(storeTask("a", 1, now))
	s.Add(storeTask("b", 2, now))

	removed, err := s.RemoveByName("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Name != "a" {
		t.Errorf("expected removed task a, got %s", removed.Name)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", s.Len())
	}
}

func TestTaskStore_RemoveByName_NotFound(t *testing.T) {
	s := NewTaskStore()
	s.Add(storeTask("a", 1, time.Now()))

	_, err := s.RemoveByName("missing")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("store changed on failed removal: %d entries", s.Len())
	}
}

func TestTaskStore_DuplicateNames_FirstMatchWins(t *testing.T) {
	s := NewTaskStore()
	now := time.Now()
	first := storeTask("dup", 1, now)
	second := storeTask("dup", 9, now.Add(time.Hour))
	s.Add(first)
	s.Add(second)

	removed, err := s.RemoveByName("dup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Priority != 1 {
		t.Errorf("expected the first inserted duplicate (priority 1), got priority %d", removed.Priority)
	}

	// The second duplicate is still present.
	entries := s.Entries()
	if len(entries) != 1 || entries[0].Priority != 9 {
		t.Errorf("expected remaining duplicate with priority 9, got %+v", entries)
	}
}

func TestTaskStore_EntriesIsSnapshot(t *testing.T) {
	s := NewTaskStore()
	s.Add(storeTask("a", 1, time.Now()))

	snapshot := s.Entries()
	snapshot[0].Task.Name = "mutated"

	if s.Entries()[0].Task.Name != "a" {
		t.Error("mutating the snapshot leaked into the store")
	}
}
