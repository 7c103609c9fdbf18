package core

// EventLogger is the subset of the observability event log that the
// planner needs. Defining it here keeps core independent of the
// observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}
