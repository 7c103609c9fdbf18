package observability

import (
	"fmt"
	"time"
)

// Metrics holds aggregated counts derived from the event log.
type Metrics struct {
	TasksAdded        int            `json:"tasks_added"`
	TasksCompleted    int            `json:"tasks_completed"`
	SchedulesComputed int            `json:"schedules_computed"`
	RemindersChecked  int            `json:"reminders_checked"`
	TasksByType       map[string]int `json:"tasks_by_type"`
	EventCount        int            `json:"event_count"`
	OldestEvent       *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent       *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

// metricsCalculator implements MetricsCalculator by reading an EventLog.
type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator that reads from
// the given EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{
		TasksByType: make(map[string]int),
	}
	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case "task.added":
			m.TasksAdded++
			if taskType, ok := event.Data["type"].(string); ok {
				m.TasksByType[taskType]++
			}
		case "task.completed":
			m.TasksCompleted++
		case "schedule.computed":
			m.SchedulesComputed++
		case "reminder.checked":
			m.RemindersChecked++
		}
	}

	return m, nil
}
