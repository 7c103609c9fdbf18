package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var densityFile string

var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Analyze task density over time",
	Long: `Plot how many tasks are due by each hour between the earliest and
latest deadline in the task file. The count is cumulative: each bucket
shows the number of tasks whose deadline is at or before that hour.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadTasksIntoPlanner(densityFile); err != nil {
			return err
		}

		points := Planner.TaskDensity()
		fmt.Println(titleStyle.Render(" Task Density "))
		fmt.Print(renderDensityChart(points, chartWidth()))
		return nil
	},
}

func init() {
	densityCmd.Flags().StringVarP(&densityFile, "file", "f", "", "task file to read (defaults to the configured tasks file)")
	rootCmd.AddCommand(densityCmd)
}
