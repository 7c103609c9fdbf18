// Package storage handles reading and writing YAML task files. Task
// files are command input and export output only: the engine's store
// itself is in-memory and never persisted.
package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/calvertf/sked/pkg/models"
	"gopkg.in/yaml.v3"
)

// TaskFileEntry is one task in a task file. The deadline is kept as a
// string in the configured time layout.
type TaskFileEntry struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Deadline string `yaml:"deadline"`
	Priority int    `yaml:"priority"`
	Duration int    `yaml:"duration"`
}

// TaskFile is the top-level structure of tasks.yaml.
type TaskFile struct {
	Version string          `yaml:"version"`
	Tasks   []TaskFileEntry `yaml:"tasks"`
}

// TaskFileManager loads and saves task files. Validation of task type
// and deadline format happens here, at the boundary: the engine
// assumes well-formed tasks.
type TaskFileManager interface {
	Load(path string) ([]models.Task, error)
	Save(path string, tasks []models.Task) error
}

type yamlTaskFileManager struct {
	layout string
}

// NewTaskFileManager creates a TaskFileManager that parses and
// renders deadlines using the given time layout.
func NewTaskFileManager(layout string) TaskFileManager {
	return &yamlTaskFileManager{layout: layout}
}

// Load reads a task file and converts its entries to tasks, in file
// order. Entries with an unknown type or an unparseable deadline are
// rejected with an error naming the offending task.
func (m *yamlTaskFileManager) Load(path string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	var file TaskFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing task file %s: %w", path, err)
	}

	tasks := make([]models.Task, 0, len(file.Tasks))
	for _, entry := range file.Tasks {
		task, err := m.entryToTask(entry)
		if err != nil {
			return nil, fmt.Errorf("task file %s: %w", path, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Save writes tasks to a task file, rendering deadlines in the
// configured layout.
func (m *yamlTaskFileManager) Save(path string, tasks []models.Task) error {
	file := TaskFile{Version: "1.0"}
	for _, t := range tasks {
		file.Tasks = append(file.Tasks, TaskFileEntry{
			Name:     t.Name,
			Type:     string(t.Type),
			Deadline: t.Deadline.Format(m.layout),
			Priority: t.Priority,
			Duration: t.Duration,
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshalling task file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing task file %s: %w", path, err)
	}
	return nil
}

func (m *yamlTaskFileManager) entryToTask(entry TaskFileEntry) (models.Task, error) {
	taskType := models.TaskType(entry.Type)
	if taskType != models.TaskTypeAcademic && taskType != models.TaskTypePersonal {
		return models.Task{}, fmt.Errorf("task %q: invalid type %q (academic or personal)", entry.Name, entry.Type)
	}

	deadline, err := time.ParseInLocation(m.layout, entry.Deadline, time.Local)
	if err != nil {
		return models.Task{}, fmt.Errorf("task %q: parsing deadline %q: %w", entry.Name, entry.Deadline, err)
	}

	return models.Task{
		Name:     entry.Name,
		Type:     taskType,
		Deadline: deadline,
		Priority: entry.Priority,
		Duration: entry.Duration,
	}, nil
}
