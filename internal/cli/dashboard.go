package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/pkg/models"
)

// Dashboard panel indices.
const (
	panelUpcoming = iota
	panelSchedule
	panelReminders
	panelDensity
	panelCount
)

type dashboardModel struct {
	activePanel int
	width       int
	height      int

	// Data.
	upcoming      []models.Task
	schedule      []models.Task
	scheduleStart time.Time
	overdue       []models.Task
	pending       []models.Task
	density       []core.DensityPoint

	// State.
	loading bool
	err     error
}

// dashboardDataMsg carries a fresh engine snapshot back to the model.
type dashboardDataMsg struct {
	upcoming      []models.Task
	schedule      []models.Task
	scheduleStart time.Time
	overdue       []models.Task
	pending       []models.Task
	density       []core.DensityPoint
	err           error
}

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDashboardModel() dashboardModel {
	return dashboardModel{
		activePanel: panelUpcoming,
		loading:     true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadDashboardData
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % panelCount
			return m, nil
		case "shift+tab":
			m.activePanel = (m.activePanel - 1 + panelCount) % panelCount
			return m, nil
		case "r":
			m.loading = true
			return m, loadDashboardData
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashboardDataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.upcoming = msg.upcoming
		m.schedule = msg.schedule
		m.scheduleStart = msg.scheduleStart
		m.overdue = msg.overdue
		m.pending = msg.pending
		m.density = msg.density
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" sked Dashboard ")
	help := helpStyle.Render("tab: switch panel | r: refresh | q: quit")

	if m.loading {
		return fmt.Sprintf("%s\n\n  Loading data...\n\n%s", title, help)
	}

	if m.err != nil {
		return fmt.Sprintf("%s\n\n  Error: %s\n\n%s", title, m.err, help)
	}

	panels := []string{
		m.renderUpcomingPanel(),
		m.renderSchedulePanel(),
		m.renderRemindersPanel(),
		m.renderDensityPanel(),
	}

	availableWidth := m.width - 2

	var body string
	if availableWidth > 160 {
		colWidth := availableWidth / panelCount
		for i := range panels {
			panels[i] = m.applyPanelStyle(i, panels[i], colWidth-4)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	} else {
		panelWidth := availableWidth - 4
		if panelWidth < 24 {
			panelWidth = 24
		}
		for i := range panels {
			panels[i] = m.applyPanelStyle(i, panels[i], panelWidth)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m dashboardModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m dashboardModel) renderUpcomingPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Upcoming"))
	b.WriteString("\n")

	if len(m.upcoming) == 0 {
		b.WriteString("  No upcoming tasks.")
		return b.String()
	}
	for _, t := range m.upcoming {
		b.WriteString("  " + taskLine(t) + "\n")
	}
	return b.String()
}

func (m dashboardModel) renderSchedulePanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Schedule"))
	b.WriteString("\n")

	if len(m.schedule) == 0 {
		b.WriteString("  Nothing fits before its deadline.")
		return b.String()
	}
	b.WriteString(renderTimeline(m.schedule, m.scheduleStart))
	return b.String()
}

func (m dashboardModel) renderRemindersPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Reminders"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		overdueStyle.Render(fmt.Sprintf("%d overdue", len(m.overdue))),
		pendingStyle.Render(fmt.Sprintf("%d pending", len(m.pending)))))
	for _, t := range m.overdue {
		b.WriteString("  " + overdueStyle.Render(taskLine(t)) + "\n")
	}
	for _, t := range m.pending {
		b.WriteString("  " + pendingStyle.Render(taskLine(t)) + "\n")
	}
	return b.String()
}

func (m dashboardModel) renderDensityPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Density"))
	b.WriteString("\n")
	b.WriteString(renderDensityChart(m.density, 30))
	return b.String()
}

func loadDashboardData() tea.Msg {
	if Planner == nil {
		return dashboardDataMsg{err: fmt.Errorf("planner not initialized")}
	}

	start := time.Now()
	overdue, pending := Planner.RemindTasks()
	return dashboardDataMsg{
		upcoming:      Planner.UpcomingTasks(),
		schedule:      Planner.ScheduleTasks(),
		scheduleStart: start,
		overdue:       overdue,
		pending:       pending,
		density:       Planner.TaskDensity(),
	}
}

var (
	dashboardFile string
	dashboardDemo bool
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI showing upcoming tasks, schedule, reminders, and density",
	Long: `Launch a terminal dashboard with panels for the deadline-ordered
task list, the greedy feasible schedule, overdue/pending reminders,
and the hourly deadline-density chart.

Navigate between panels with Tab, refresh with r, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Planner == nil {
			return fmt.Errorf("planner not initialized")
		}

		if dashboardFile != "" {
			if err := loadTasksIntoPlanner(dashboardFile); err != nil {
				return err
			}
		}
		if dashboardDemo {
			seedDemoTasks(Planner, time.Now)
		}

		p := tea.NewProgram(newDashboardModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardFile, "file", "f", "", "seed the session from a task file")
	dashboardCmd.Flags().BoolVar(&dashboardDemo, "demo", false, "seed three example tasks")
	rootCmd.AddCommand(dashboardCmd)
}
