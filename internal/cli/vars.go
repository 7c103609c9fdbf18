package cli

import (
	"github.com/calvertf/sked/internal/core"
	"github.com/calvertf/sked/internal/observability"
	"github.com/calvertf/sked/internal/storage"
)

// Service instances shared by the commands, set during app
// initialization in internal/app.go. Tests swap these for mocks.
var (
	Planner     core.Planner
	TaskFiles   storage.TaskFileManager
	Cfg         *core.Config
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)
