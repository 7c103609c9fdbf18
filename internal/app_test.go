package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calvertf/sked/internal/cli"
)

func TestNewApp_WiresServices(t *testing.T) {
	dir := t.TempDir()

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Planner == nil {
		t.Error("Planner not initialized")
	}
	if app.TaskFiles == nil {
		t.Error("TaskFiles not initialized")
	}
	if app.Cfg == nil {
		t.Error("Cfg not initialized")
	}
	if app.EventLog == nil {
		t.Error("EventLog not initialized")
	}
	if app.MetricsCalc == nil {
		t.Error("MetricsCalc not initialized")
	}

	// CLI layer received the same instances.
	if cli.Planner != app.Planner {
		t.Error("cli.Planner not wired")
	}
	if cli.Cfg != app.Cfg {
		t.Error("cli.Cfg not wired")
	}

	// The event log file is created in the base path.
	if _, err := os.Stat(filepath.Join(dir, ".sked_events.jsonl")); err != nil {
		t.Errorf("event log file missing: %v", err)
	}
}

func TestNewApp_EngineRoundTrip(t *testing.T) {
	dir := t.TempDir()

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := app.Planner.UpcomingTasks(); len(got) != 0 {
		t.Errorf("expected empty session, got %v", got)
	}
}

func TestResolveBasePath_EnvOverride(t *testing.T) {
	t.Setenv("SKED_HOME", "/tmp/sked-home")

	if got := ResolveBasePath(); got != "/tmp/sked-home" {
		t.Errorf("expected SKED_HOME to win, got %q", got)
	}
}

func TestResolveBasePath_FindsConfigDir(t *testing.T) {
	t.Setenv("SKED_HOME", "")

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".skedconfig"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("creating subdir: %v", err)
	}
	t.Chdir(sub)

	got := ResolveBasePath()
	// Resolve symlinks before comparing; temp dirs are often symlinked.
	wantResolved, _ := filepath.EvalSymlinks(dir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("expected %q, got %q", wantResolved, gotResolved)
	}
}
