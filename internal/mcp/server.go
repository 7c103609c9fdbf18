// Package mcp provides an MCP (Model Context Protocol) server that
// exposes the scheduling engine as tools for AI assistants. All tools
// operate on one in-memory planner session that lives for the
// duration of the server process.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/internal/observability"
	"github.com/calvertf/sked/pkg/models"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the planner and exposes it as MCP tools.
type Server struct {
	server      *gomcp.Server
	planner     core.Planner
	metricsCalc observability.MetricsCalculator
}

// NewServer creates an MCP server over the given planner session.
// metricsCalc may be nil if observability is disabled.
func NewServer(planner core.Planner, metricsCalc observability.MetricsCalculator, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		planner:     planner,
		metricsCalc: metricsCalc,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "sked", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type addTaskInput struct {
	Name     string `json:"name" jsonschema:"required,the task name, used later to mark the task completed"`
	Type     string `json:"type" jsonschema:"required,the task type (academic or personal)"`
	Deadline string `json:"deadline" jsonschema:"required,the absolute deadline in RFC 3339 format"`
	Priority int    `json:"priority" jsonschema:"required,integer priority, lower value means higher priority"`
	Duration int    `json:"duration" jsonschema:"required,estimated duration in minutes"`
}

type addTaskOutput struct {
	Message     string `json:"message"`
	ActiveTasks int    `json:"active_tasks"`
}

type taskOutput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Deadline string `json:"deadline"`
	Priority int    `json:"priority"`
	Duration int    `json:"duration"`
}

type listTasksInput struct{}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type remindOutput struct {
	Overdue []taskOutput `json:"overdue"`
	Pending []taskOutput `json:"pending"`
}

type completeTaskInput struct {
	Name string `json:"name" jsonschema:"required,the name of the task to mark as completed"`
}

type completeTaskOutput struct {
	Message string `json:"message"`
}

type densityPointOutput struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

type densityOutput struct {
	Points []densityPointOutput `json:"points"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 24h). Defaults to 24h."`
}

type metricsOutput struct {
	TasksAdded        int            `json:"tasks_added"`
	TasksCompleted    int            `json:"tasks_completed"`
	SchedulesComputed int            `json:"schedules_computed"`
	RemindersChecked  int            `json:"reminders_checked"`
	TasksByType       map[string]int `json:"tasks_by_type"`
	EventCount        int            `json:"event_count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the active session. The task competes for schedule slots by (priority, deadline).",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_upcoming",
		Description: "List active tasks ordered by deadline ascending.",
	}, s.handleListUpcoming)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "schedule_tasks",
		Description: "Compute the greedy feasible schedule: tasks in (priority, deadline) order that can run back-to-back from now and finish by their deadlines.",
	}, s.handleScheduleTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remind_tasks",
		Description: "Partition active tasks into overdue and pending relative to now, each ordered by priority.",
	}, s.handleRemindTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "complete_task",
		Description: "Mark the named task as completed, moving it from the active set to the completed archive.",
	}, s.handleCompleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_completed",
		Description: "List completed tasks in completion order.",
	}, s.handleListCompleted)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "task_density",
		Description: "Hourly deadline-density analysis: cumulative count of tasks due by each hour between the earliest and latest deadline.",
	}, s.handleTaskDensity)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Aggregated session metrics from the event log: tasks added, completed, schedules computed.",
	}, s.handleGetMetrics)
}

// --- Tool handlers ---

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, addTaskOutput, error) {
	if input.Name == "" {
		return errorResult("name is required"), addTaskOutput{}, nil
	}

	taskType := models.TaskType(input.Type)
	if taskType != models.TaskTypeAcademic && taskType != models.TaskTypePersonal {
		return errorResult(fmt.Sprintf("invalid type %q: must be academic or personal", input.Type)), addTaskOutput{}, nil
	}

	deadline, err := time.Parse(time.RFC3339, input.Deadline)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing deadline %q: %s", input.Deadline, err)), addTaskOutput{}, nil
	}

	s.planner.AddTask(models.Task{
		Name:     input.Name,
		Type:     taskType,
		Deadline: deadline,
		Priority: input.Priority,
		Duration: input.Duration,
	})

	out := addTaskOutput{
		Message:     fmt.Sprintf("task %q added", input.Name),
		ActiveTasks: s.planner.ActiveCount(),
	}
	return nil, out, nil
}

func (s *Server) handleListUpcoming(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	return nil, toListOutput(s.planner.UpcomingTasks()), nil
}

func (s *Server) handleScheduleTasks(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	return nil, toListOutput(s.planner.ScheduleTasks()), nil
}

func (s *Server) handleRemindTasks(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, remindOutput, error) {
	overdue, pending := s.planner.RemindTasks()
	out := remindOutput{
		Overdue: toTaskOutputs(overdue),
		Pending: toTaskOutputs(pending),
	}
	return nil, out, nil
}

func (s *Server) handleCompleteTask(_ context.Context, _ *gomcp.CallToolRequest, input completeTaskInput) (*gomcp.CallToolResult, completeTaskOutput, error) {
	if input.Name == "" {
		return errorResult("name is required"), completeTaskOutput{}, nil
	}

	task, err := s.planner.CompleteTask(input.Name)
	if err != nil {
		return errorResult(fmt.Sprintf("completing task %q: %s", input.Name, err)), completeTaskOutput{}, nil
	}

	out := completeTaskOutput{
		Message: fmt.Sprintf("task %q marked as completed", task.Name),
	}
	return nil, out, nil
}

func (s *Server) handleListCompleted(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	return nil, toListOutput(s.planner.CompletedTasks()), nil
}

func (s *Server) handleTaskDensity(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, densityOutput, error) {
	points := s.planner.TaskDensity()
	out := densityOutput{
		Points: make([]densityPointOutput, len(points)),
	}
	for i, p := range points {
		out.Points[i] = densityPointOutput{
			Time:  p.Time.Format(time.RFC3339),
			Count: p.Count,
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (observability may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "24h"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		TasksAdded:        metrics.TasksAdded,
		TasksCompleted:    metrics.TasksCompleted,
		SchedulesComputed: metrics.SchedulesComputed,
		RemindersChecked:  metrics.RemindersChecked,
		TasksByType:       metrics.TasksByType,
		EventCount:        metrics.EventCount,
	}
	return nil, out, nil
}

// --- Helpers ---

func toTaskOutput(t models.Task) taskOutput {
	return taskOutput{
		Name:     t.Name,
		Type:     string(t.Type),
		Deadline: t.Deadline.Format(time.RFC3339),
		Priority: t.Priority,
		Duration: t.Duration,
	}
}

func toTaskOutputs(tasks []models.Task) []taskOutput {
	out := make([]taskOutput, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskOutput(t)
	}
	return out
}

func toListOutput(tasks []models.Task) listTasksOutput {
	return listTasksOutput{
		Tasks: toTaskOutputs(tasks),
		Count: len(tasks),
	}
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{TasksByType: make(map[string]int)}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d" or
// "24h" into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
