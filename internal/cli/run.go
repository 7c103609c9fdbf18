package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/pkg/models"
)

var (
	runFile string
	runDemo bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive scheduling session",
	Long: `Open the interactive menu: add tasks, view upcoming tasks, compute
a schedule, analyze density, check reminders, and mark tasks as
completed. The session is in-memory; nothing survives exit unless a
task file is exported from the schedule command.

Use --file to seed the session from a task file, or --demo to seed
three example tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Planner == nil {
			return fmt.Errorf("planner not initialized")
		}

		if runFile != "" {
			if err := loadTasksIntoPlanner(runFile); err != nil {
				return err
			}
		}
		if runDemo {
			seedDemoTasks(Planner, time.Now)
		}

		return runSession(os.Stdin, os.Stdout)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "seed the session from a task file")
	runCmd.Flags().BoolVar(&runDemo, "demo", false, "seed three example tasks")
	rootCmd.AddCommand(runCmd)
}

// seedDemoTasks adds the canonical example tasks relative to now.
func seedDemoTasks(p core.Planner, now func() time.Time) {
	base := now()
	p.AddTask(models.Task{Name: "Calculus Assignment", Type: models.TaskTypeAcademic, Deadline: base.Add(5 * time.Hour), Priority: 1, Duration: 120})
	p.AddTask(models.Task{Name: "Project Report", Type: models.TaskTypeAcademic, Deadline: base.Add(12 * time.Hour), Priority: 2, Duration: 180})
	p.AddTask(models.Task{Name: "Self-Care", Type: models.TaskTypePersonal, Deadline: base.Add(8 * time.Hour), Priority: 3, Duration: 60})
}

// runSession drives the interactive menu loop until the user exits or
// input is exhausted.
func runSession(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, titleStyle.Render(" Personal Scheduling Assistant "))
		fmt.Fprintln(out, "1. Add Task")
		fmt.Fprintln(out, "2. View Upcoming Tasks")
		fmt.Fprintln(out, "3. Schedule Tasks")
		fmt.Fprintln(out, "4. Analyze Task Density")
		fmt.Fprintln(out, "5. Task Reminders")
		fmt.Fprintln(out, "6. Mark Task as Completed")
		fmt.Fprintln(out, "7. View Completed Tasks")
		fmt.Fprintln(out, "8. Exit")

		choice, err := promptLine(reader, out, "Enter your choice (1-8): ")
		if err != nil {
			// EOF ends the session cleanly.
			return nil
		}

		switch choice {
		case "1":
			if err := promptTasks(reader, out); err != nil {
				return err
			}
		case "2":
			tasks := Planner.UpcomingTasks()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No upcoming tasks.")
				break
			}
			fmt.Fprintln(out, "Upcoming Tasks:")
			for _, t := range tasks {
				fmt.Fprintln(out, "  "+taskLine(t))
			}
		case "3":
			start := time.Now()
			schedule := Planner.ScheduleTasks()
			if len(schedule) == 0 {
				fmt.Fprintln(out, "No tasks available to schedule.")
				break
			}
			fmt.Fprintln(out, "Scheduled Tasks:")
			for _, t := range schedule {
				fmt.Fprintln(out, "  "+taskLine(t))
			}
			fmt.Fprint(out, renderTimeline(schedule, start))
		case "4":
			fmt.Fprint(out, renderDensityChart(Planner.TaskDensity(), chartWidth()))
		case "5":
			overdue, pending := Planner.RemindTasks()
			fmt.Fprint(out, renderReminders(overdue, pending))
		case "6":
			name, err := promptLine(reader, out, "Enter the name of the task to mark as completed: ")
			if err != nil {
				return nil
			}
			if _, err := Planner.CompleteTask(name); err != nil {
				fmt.Fprintf(out, "Task %q not found.\n", name)
				break
			}
			fmt.Fprintf(out, "Task %q marked as completed.\n", name)
		case "7":
			completed := Planner.CompletedTasks()
			fmt.Fprintln(out, headerStyle.Render("--- Completed Tasks ---"))
			if len(completed) == 0 {
				fmt.Fprintln(out, "No tasks have been completed yet.")
				break
			}
			for _, t := range completed {
				fmt.Fprintln(out, "  "+taskLine(t))
			}
		case "8":
			fmt.Fprintln(out, "Exiting.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please select a valid option.")
		}
	}
}

// promptTasks reads tasks field by field until the user types 'done'.
// Invalid fields are re-prompted; validation happens here so the
// engine only ever sees well-formed tasks.
func promptTasks(reader *bufio.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Enter your tasks. Type 'done' when finished.")
	for {
		name, err := promptLine(reader, out, "Task name (or 'done' to finish): ")
		if err != nil {
			return nil
		}
		if strings.EqualFold(name, "done") {
			return nil
		}

		task, err := promptTaskFields(reader, out, name)
		if err != nil {
			return nil
		}
		Planner.AddTask(task)
		fmt.Fprintf(out, "Task %q added.\n", name)
	}
}

func promptTaskFields(reader *bufio.Reader, out io.Writer, name string) (models.Task, error) {
	var taskType models.TaskType
	for {
		raw, err := promptLine(reader, out, "Task type (academic/personal): ")
		if err != nil {
			return models.Task{}, err
		}
		taskType = models.TaskType(strings.ToLower(raw))
		if taskType == models.TaskTypeAcademic || taskType == models.TaskTypePersonal {
			break
		}
		fmt.Fprintln(out, "Please enter a valid task type (academic/personal).")
	}

	layout := timeLayout()
	var deadline time.Time
	for {
		raw, err := promptLine(reader, out, fmt.Sprintf("Deadline (%s): ", layout))
		if err != nil {
			return models.Task{}, err
		}
		deadline, err = time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			break
		}
		fmt.Fprintf(out, "Invalid format. Please enter the deadline as %s.\n", layout)
	}

	priority, err := promptInt(reader, out, "Priority (1 for highest priority): ", defaultPriority())
	if err != nil {
		return models.Task{}, err
	}
	duration, err := promptInt(reader, out, "Duration in minutes: ", defaultDuration())
	if err != nil {
		return models.Task{}, err
	}

	return models.Task{
		Name:     name,
		Type:     taskType,
		Deadline: deadline,
		Priority: priority,
		Duration: duration,
	}, nil
}

// promptInt re-prompts until a valid integer is entered; a blank line
// takes the fallback.
func promptInt(reader *bufio.Reader, out io.Writer, prompt string, fallback int) (int, error) {
	for {
		raw, err := promptLine(reader, out, prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return fallback, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(out, "Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func defaultPriority() int {
	if Cfg != nil {
		return Cfg.DefaultPriority
	}
	return core.DefaultConfig().DefaultPriority
}

func defaultDuration() int {
	if Cfg != nil {
		return Cfg.DefaultDuration
	}
	return core.DefaultConfig().DefaultDuration
}
