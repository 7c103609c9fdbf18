package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calvertf/sked/internal/mcp"
)

var mcpFile string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Expose the scheduling engine as MCP tools over stdio so AI
assistants can add tasks, compute schedules, check reminders, and
mark tasks completed. All tools share one in-memory session that
lives for the duration of the server process.

Use --file to seed the session from a task file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Planner == nil {
			return fmt.Errorf("planner not initialized")
		}

		if mcpFile != "" {
			if err := loadTasksIntoPlanner(mcpFile); err != nil {
				return err
			}
		}

		server := mcp.NewServer(Planner, MetricsCalc, appVersion)
		return server.Run(cmd.Context())
	},
}

func init() {
	mcpCmd.Flags().StringVarP(&mcpFile, "file", "f", "", "seed the session from a task file")
	rootCmd.AddCommand(mcpCmd)
}
