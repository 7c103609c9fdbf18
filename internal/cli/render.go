package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/pkg/models"
)

// Style definitions shared by the one-shot commands and the dashboard.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	academicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	personalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// timeLayout returns the configured deadline layout, falling back to
// the default when no config was loaded.
func timeLayout() string {
	if Cfg != nil && Cfg.TimeLayout != "" {
		return Cfg.TimeLayout
	}
	return core.DefaultConfig().TimeLayout
}

func chartWidth() int {
	if Cfg != nil && Cfg.ChartWidth > 0 {
		return Cfg.ChartWidth
	}
	return core.DefaultConfig().ChartWidth
}

// taskLine renders one task in the single-line summary form used by
// lists and reminders.
func taskLine(t models.Task) string {
	return fmt.Sprintf("%s (%s) - Priority: %d, Due: %s, Duration: %d min",
		t.Name, t.Type, t.Priority, t.Deadline.Format(timeLayout()), t.Duration)
}

// renderTaskList renders tasks as an aligned table with a NAME, TYPE,
// PRI, DUE, and DUR column.
func renderTaskList(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-24s %-9s %-4s %-17s %s", "NAME", "TYPE", "PRI", "DUE", "DUR")))
	b.WriteString("\n")
	for _, t := range tasks {
		line := fmt.Sprintf("  %-24s %-9s %-4d %-17s %d min",
			t.Name, t.Type, t.Priority, t.Deadline.Format(timeLayout()), t.Duration)
		b.WriteString(styleForType(t.Type).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDensityChart renders the hourly density points as a
// horizontal bar chart, one row per bucket, scaled to width columns.
func renderDensityChart(points []core.DensityPoint, width int) string {
	if len(points) == 0 {
		return "  No tasks to analyze.\n"
	}
	if width < 10 {
		width = 10
	}

	maxCount := 0
	for _, p := range points {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("  Tasks due over time (cumulative, hourly)"))
	b.WriteString("\n")
	for _, p := range points {
		barLen := 0
		if maxCount > 0 {
			barLen = p.Count * width / maxCount
		}
		bar := strings.Repeat("█", barLen)
		b.WriteString(fmt.Sprintf("  %s %s %d\n",
			dimStyle.Render(p.Time.Format(timeLayout())),
			barStyle.Render(bar),
			p.Count))
	}
	return b.String()
}

// renderTimeline renders a computed schedule as back-to-back time
// slots starting from start, one row per accepted task.
func renderTimeline(schedule []models.Task, start time.Time) string {
	if len(schedule) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("  Timeline"))
	b.WriteString("\n")

	clock := start
	for _, t := range schedule {
		end := clock.Add(t.DurationMinutes())
		slot := fmt.Sprintf("%s - %s", clock.Format("15:04"), end.Format("15:04"))
		// Bar length proportional to duration, one cell per 15 minutes.
		barLen := t.Duration / 15
		if barLen < 1 {
			barLen = 1
		}
		bar := strings.Repeat("█", barLen)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			dimStyle.Render(slot),
			styleForType(t.Type).Render(bar),
			t.Name))
		clock = end
	}
	return b.String()
}

// renderReminders renders the overdue and pending groups.
func renderReminders(overdue, pending []models.Task) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("--- Task Reminders ---"))
	b.WriteString("\n")

	if len(overdue) > 0 {
		b.WriteString(overdueStyle.Render("Overdue Tasks:"))
		b.WriteString("\n")
		for _, t := range overdue {
			b.WriteString("  " + overdueStyle.Render(taskLine(t)) + "\n")
		}
	} else {
		b.WriteString("No overdue tasks!\n")
	}

	if len(pending) > 0 {
		b.WriteString(pendingStyle.Render("Pending Tasks:"))
		b.WriteString("\n")
		for _, t := range pending {
			b.WriteString("  " + pendingStyle.Render(taskLine(t)) + "\n")
		}
	} else {
		b.WriteString("No pending tasks!\n")
	}

	return b.String()
}

func styleForType(t models.TaskType) lipgloss.Style {
	switch t {
	case models.TaskTypeAcademic:
		return academicStyle
	case models.TaskTypePersonal:
		return personalStyle
	default:
		return lipgloss.NewStyle()
	}
}
