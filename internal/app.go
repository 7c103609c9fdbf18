// Package internal provides the App struct that wires all components
// of sked together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/calvertf/sked/internal/cli"
	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/internal/observability"
	"github.com/calvertf/sked/internal/storage"
)

// App holds all service dependencies for sked.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Cfg       *core.Config

	// Core engine
	Planner core.Planner

	// Storage layer
	TaskFiles storage.TaskFileManager

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components. basePath is the directory
// where .skedconfig and the event log live.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		// A broken config file falls back to defaults.
		cfg = core.DefaultConfig()
	}
	app.Cfg = cfg

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".sked_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if the log can't be created.
		app.EventLog = nil
	}

	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}

	// --- Core engine ---
	app.Planner = core.NewPlanner(nil, evtAdapter)

	// --- Storage layer ---
	app.TaskFiles = storage.NewTaskFileManager(cfg.TimeLayout)

	// --- CLI layer ---
	cli.Planner = app.Planner
	cli.TaskFiles = app.TaskFiles
	cli.Cfg = app.Cfg
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// ResolveBasePath determines where sked keeps its config and event
// log: $SKED_HOME if set, otherwise the nearest directory up the tree
// containing .skedconfig, otherwise the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("SKED_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".skedconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Type: eventType,
		Data: data,
	})
}
