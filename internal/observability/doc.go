// Package observability provides the append-only event log that
// records engine activity (tasks added, schedules computed, tasks
// completed) and the metrics calculator that aggregates it.
package observability
