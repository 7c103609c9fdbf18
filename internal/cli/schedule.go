package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	scheduleFile string
	scheduleOut  string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute the greedy feasible schedule",
	Long: `Compute which tasks can be performed back-to-back starting now
without any task finishing after its own deadline.

Tasks are considered in (priority, deadline) order; a task that does
not fit is skipped and stays active. The accepted sequence is printed
together with a timeline, and can be exported with --out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadTasksIntoPlanner(scheduleFile); err != nil {
			return err
		}

		start := time.Now()
		schedule := Planner.ScheduleTasks()
		if len(schedule) == 0 {
			fmt.Println("No tasks available to schedule.")
			return nil
		}

		fmt.Println(titleStyle.Render(" Scheduled Tasks "))
		fmt.Print(renderTaskList(schedule))
		fmt.Print(renderTimeline(schedule, start))

		if scheduleOut != "" {
			if err := TaskFiles.Save(scheduleOut, schedule); err != nil {
				return fmt.Errorf("exporting schedule: %w", err)
			}
			fmt.Printf("Schedule written to %s\n", scheduleOut)
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleFile, "file", "f", "", "task file to read (defaults to the configured tasks file)")
	scheduleCmd.Flags().StringVarP(&scheduleOut, "out", "o", "", "write the accepted schedule to this task file")
	rootCmd.AddCommand(scheduleCmd)
}
