package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/pkg/models"
)

func TestUpcomingCommand_NilPlanner(t *testing.T) {
	restore := swapServices(nil, &taskFilesMock{})
	defer restore()

	err := upcomingCmd.RunE(upcomingCmd, nil)
	if err == nil {
		t.Fatal("expected error when Planner is nil")
	}
	if !strings.Contains(err.Error(), "planner not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpcomingCommand_LoadError(t *testing.T) {
	files := &taskFilesMock{
		loadFn: func(string) ([]models.Task, error) {
			return nil, fmt.Errorf("no such file")
		},
	}
	restore := swapServices(core.NewPlanner(frozenNow, nil), files)
	defer restore()

	err := upcomingCmd.RunE(upcomingCmd, nil)
	if err == nil {
		t.Fatal("expected error when the task file cannot be loaded")
	}
}

func TestUpcomingCommand_FeedsPlanner(t *testing.T) {
	files := &taskFilesMock{
		loadFn: func(string) ([]models.Task, error) {
			return []models.Task{
				cliTask("late", 1, 10*time.Hour, 30),
				cliTask("early", 2, time.Hour, 30),
			}, nil
		},
	}
	planner := core.NewPlanner(frozenNow, nil)
	restore := swapServices(planner, files)
	defer restore()

	if err := upcomingCmd.RunE(upcomingCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := planner.UpcomingTasks()
	if len(got) != 2 || got[0].Name != "early" {
		t.Fatalf("planner not fed in deadline order: %v", got)
	}
}

func TestUpcomingCommand_DefaultsToConfiguredFile(t *testing.T) {
	files := &taskFilesMock{}
	restore := swapServices(core.NewPlanner(frozenNow, nil), files)
	defer restore()
	Cfg = &core.Config{TasksFile: "custom.yaml", TimeLayout: "2006-01-02 15:04"}

	upcomingFile = ""
	if err := upcomingCmd.RunE(upcomingCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files.loadedPath != "custom.yaml" {
		t.Errorf("expected configured file, loaded %q", files.loadedPath)
	}
}
