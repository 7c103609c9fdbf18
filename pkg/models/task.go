package models

import "time"

// TaskType classifies what kind of work a task is.
type TaskType string

const (
	TaskTypeAcademic TaskType = "academic"
	TaskTypePersonal TaskType = "personal"
)

// Task is a single unit of work. A task is immutable after creation:
// the engine never rewrites its fields, it only moves the task from
// the active store to the completed archive.
//
// Priority is an integer where a lower value means higher priority.
// Duration is the estimated time to complete in minutes. Neither is
// validated by the engine; both are used purely as comparison keys.
type Task struct {
	Name     string    `yaml:"name" json:"name"`
	Type     TaskType  `yaml:"type" json:"type"`
	Deadline time.Time `yaml:"deadline" json:"deadline"`
	Priority int       `yaml:"priority" json:"priority"`
	Duration int       `yaml:"duration" json:"duration"`
}

// DurationMinutes returns the task duration as a time.Duration.
func (t Task) DurationMinutes() time.Duration {
	return time.Duration(t.Duration) * time.Minute
}
