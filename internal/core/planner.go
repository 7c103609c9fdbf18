package core

import (
	"sync"
	"time"

	"github.com/calvertf/sked/pkg/models"
)

// Event types emitted by the planner.
const (
	EventTaskAdded        = "task.added"
	EventTaskCompleted    = "task.completed"
	EventScheduleComputed = "schedule.computed"
	EventReminderChecked  = "reminder.checked"
)

// Planner is the scheduling engine facade consumed by the CLI, the
// dashboard, and the MCP server. It owns the active task store, the
// completed-task archive, and the most recently computed schedule.
type Planner interface {
	AddTask(task models.Task)
	UpcomingTasks() []models.Task
	ScheduleTasks() []models.Task
	CurrentSchedule() []models.Task
	RemindTasks() (overdue, pending []models.Task)
	CompleteTask(name string) (models.Task, error)
	CompletedTasks() []models.Task
	TaskDensity() []DensityPoint
	ActiveCount() int
}

// planner implements Planner over an in-memory TaskStore. A single
// mutex guards store mutation and schedule recomputation so the MCP
// server can serve concurrent callers safely.
type planner struct {
	mu        sync.Mutex
	store     *TaskStore
	completed []models.Task
	schedule  []models.Task
	now       func() time.Time
	events    EventLogger
}

// NewPlanner creates a Planner with an empty store, archive, and
// schedule. now supplies the current time for scheduling and
// reminders; pass nil to use time.Now. events may be nil to disable
// event recording.
func NewPlanner(now func() time.Time, events EventLogger) Planner {
	if now == nil {
		now = time.Now
	}
	return &planner{
		store:  NewTaskStore(),
		now:    now,
		events: events,
	}
}

// AddTask inserts a task into the active store.
func (p *planner) AddTask(task models.Task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.store.Add(task)
	p.logEvent(EventTaskAdded, map[string]any{
		"name": task.Name,
		"type": string(task.Type),
	})
}

// UpcomingTasks returns the active tasks ordered by deadline
// ascending. Tasks sharing a deadline keep their insertion order.
func (p *planner) UpcomingTasks() []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()

	sorted := SortByKey(p.store.Entries(), func(e Entry) int64 {
		return e.Deadline.UnixNano()
	})
	return entryTasks(sorted)
}

// ScheduleTasks runs the greedy feasibility pass: active tasks are
// considered in (priority ascending, deadline ascending) order and a
// task is accepted when it can run back-to-back from the current
// moment and still finish by its own deadline. Rejected tasks are
// skipped silently and remain in the store. The result replaces the
// previously computed schedule.
func (p *planner) ScheduleTasks() []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Two stable passes yield the (priority, deadline) key order:
	// sorting by deadline first makes deadlines the tie-break of the
	// subsequent priority sort, and exact (priority, deadline) ties
	// keep their original insertion order.
	ordered := SortByKey(p.store.Entries(), func(e Entry) int64 {
		return e.Deadline.UnixNano()
	})
	ordered = SortByKey(ordered, func(e Entry) int { return e.Priority })

	clock := p.now()
	var accepted []models.Task
	for _, e := range ordered {
		finish := clock.Add(e.Task.DurationMinutes())
		if finish.After(e.Deadline) {
			continue
		}
		accepted = append(accepted, e.Task)
		clock = finish
	}

	p.schedule = accepted
	p.logEvent(EventScheduleComputed, map[string]any{
		"considered": len(ordered),
		"accepted":   len(accepted),
	})
	return copyTasks(accepted)
}

// CurrentSchedule returns the schedule from the most recent
// ScheduleTasks call, or an empty sequence if none has been computed.
func (p *planner) CurrentSchedule() []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyTasks(p.schedule)
}

// RemindTasks partitions the active tasks by comparing each deadline
// to the current moment: tasks with deadline strictly before now are
// overdue, the rest are pending. Both groups are ordered by priority
// ascending, stably.
func (p *planner) RemindTasks() (overdue, pending []models.Task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	var over, pend []Entry
	for _, e := range p.store.Entries() {
		if e.Deadline.Before(now) {
			over = append(over, e)
		} else {
			pend = append(pend, e)
		}
	}

	byPriority := func(e Entry) int { return e.Priority }
	overdue = entryTasks(SortByKey(over, byPriority))
	pending = entryTasks(SortByKey(pend, byPriority))

	p.logEvent(EventReminderChecked, map[string]any{
		"overdue": len(overdue),
		"pending": len(pending),
	})
	return overdue, pending
}

// CompleteTask removes the first active task with the given name and
// appends it to the completed archive. This is the only path by which
// a task leaves the store. On ErrTaskNotFound the archive is not
// touched.
func (p *planner) CompleteTask(name string) (models.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	task, err := p.store.RemoveByName(name)
	if err != nil {
		return models.Task{}, err
	}

	p.completed = append(p.completed, task)
	p.logEvent(EventTaskCompleted, map[string]any{
		"name": task.Name,
		"type": string(task.Type),
	})
	return task, nil
}

// CompletedTasks returns the archive in completion order.
func (p *planner) CompletedTasks() []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyTasks(p.completed)
}

// TaskDensity runs the hourly deadline-density analysis over the
// active tasks.
func (p *planner) TaskDensity() []DensityPoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Density(entryTasks(p.store.Entries()))
}

// ActiveCount returns the number of active tasks.
func (p *planner) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Len()
}

// logEvent emits an event if an EventLogger is configured.
func (p *planner) logEvent(eventType string, data map[string]any) {
	if p.events != nil {
		_ = p.events.LogEvent(eventType, data)
	}
}

func entryTasks(entries []Entry) []models.Task {
	tasks := make([]models.Task, len(entries))
	for i, e := range entries {
		tasks[i] = e.Task
	}
	return tasks
}

func copyTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
