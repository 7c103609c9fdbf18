package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upcomingFile string

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List tasks ordered by deadline",
	Long: `List the tasks from the task file ordered by deadline ascending.
Tasks sharing a deadline keep their file order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadTasksIntoPlanner(upcomingFile); err != nil {
			return err
		}

		tasks := Planner.UpcomingTasks()
		if len(tasks) == 0 {
			fmt.Println("No upcoming tasks.")
			return nil
		}

		fmt.Println(titleStyle.Render(" Upcoming Tasks "))
		fmt.Print(renderTaskList(tasks))
		return nil
	},
}

func init() {
	upcomingCmd.Flags().StringVarP(&upcomingFile, "file", "f", "", "task file to read (defaults to the configured tasks file)")
	rootCmd.AddCommand(upcomingCmd)
}
