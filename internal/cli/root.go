// Package cli implements the sked command line interface: one-shot
// commands over a YAML task file, the interactive menu session, the
// bubbletea dashboard, and the MCP server command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "sked",
	Short: "sked - personal scheduling assistant",
	Long: `sked is a personal scheduling assistant. It keeps tasks with
deadlines, priorities, and durations, shows deadline-ordered views,
computes a greedy feasible schedule (which tasks fit back-to-back
before their deadlines), raises overdue/pending reminders, tracks
completed tasks, and analyzes deadline density over time.

One-shot commands read tasks from a YAML task file; 'sked run' opens
an interactive session; 'sked dashboard' shows a live terminal view;
'sked mcp' exposes the engine to AI assistants.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sked %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
