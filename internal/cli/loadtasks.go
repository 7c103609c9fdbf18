package cli

import "fmt"

// loadTasksIntoPlanner reads a task file and feeds every task to the
// planner. An empty path falls back to the configured tasks file.
func loadTasksIntoPlanner(path string) error {
	if Planner == nil {
		return fmt.Errorf("planner not initialized")
	}
	if TaskFiles == nil {
		return fmt.Errorf("task file manager not initialized")
	}

	if path == "" {
		if Cfg != nil {
			path = Cfg.TasksFile
		} else {
			path = "tasks.yaml"
		}
	}

	tasks, err := TaskFiles.Load(path)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	for _, t := range tasks {
		Planner.AddTask(t)
	}
	return nil
}
