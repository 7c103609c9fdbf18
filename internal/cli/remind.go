package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var remindFile string

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show overdue and pending tasks",
	Long: `Partition the tasks from the task file into overdue and pending
relative to now. Each group is ordered by priority ascending.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadTasksIntoPlanner(remindFile); err != nil {
			return err
		}

		overdue, pending := Planner.RemindTasks()
		fmt.Print(renderReminders(overdue, pending))
		return nil
	},
}

func init() {
	remindCmd.Flags().StringVarP(&remindFile, "file", "f", "", "task file to read (defaults to the configured tasks file)")
	rootCmd.AddCommand(remindCmd)
}
