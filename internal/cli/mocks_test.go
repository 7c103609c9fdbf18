package cli

import (
	"time"

	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/pkg/models"
)

var testBase = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func frozenNow() time.Time { return testBase }

// taskFilesMock implements storage.TaskFileManager for command tests.
type taskFilesMock struct {
	loadFn     func(path string) ([]models.Task, error)
	saveFn     func(path string, tasks []models.Task) error
	loadedPath string
	savedPath  string
	savedTasks []models.Task
}

func (m *taskFilesMock) Load(path string) ([]models.Task, error) {
	m.loadedPath = path
	if m.loadFn != nil {
		return m.loadFn(path)
	}
	return nil, nil
}

func (m *taskFilesMock) Save(path string, tasks []models.Task) error {
	m.savedPath = path
	m.savedTasks = tasks
	if m.saveFn != nil {
		return m.saveFn(path, tasks)
	}
	return nil
}

// swapServices replaces the shared service vars for one test and
// returns a restore function.
func swapServices(planner core.Planner, files *taskFilesMock) func() {
	origPlanner := Planner
	origFiles := TaskFiles
	origCfg := Cfg

	Planner = planner
	if files != nil {
		TaskFiles = files
	}

	return func() {
		Planner = origPlanner
		TaskFiles = origFiles
		Cfg = origCfg
	}
}

func cliTask(name string, priority int, offset time.Duration, duration int) models.Task {
	return models.Task{
		Name:     name,
		Type:     models.TaskTypeAcademic,
		Deadline: testBase.Add(offset),
		Priority: priority,
		Duration: duration,
	}
}
