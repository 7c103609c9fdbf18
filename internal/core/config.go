package core

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for sked.
type Config struct {
	// TimeLayout is the Go time layout used to parse and render
	// deadlines in task files and prompts.
	TimeLayout string
	// TasksFile is the default task file consumed by one-shot commands.
	TasksFile string
	// DefaultPriority is used when a prompted priority is left blank.
	DefaultPriority int
	// DefaultDuration is the fallback duration in minutes.
	DefaultDuration int
	// ChartWidth is the plot width of the density chart in columns.
	ChartWidth int
}

// ConfigurationManager loads the .skedconfig file.
type ConfigurationManager interface {
	Load() (*Config, error)
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .skedconfig from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TimeLayout:      "2006-01-02 15:04",
		TasksFile:       "tasks.yaml",
		DefaultPriority: 3,
		DefaultDuration: 30,
		ChartWidth:      60,
	}
}

// Load reads .skedconfig from the base path. If the file does not
// exist, defaults are returned.
func (cm *viperConfigManager) Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".skedconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("time.layout", cfg.TimeLayout)
	v.SetDefault("tasks.file", cfg.TasksFile)
	v.SetDefault("defaults.priority", cfg.DefaultPriority)
	v.SetDefault("defaults.duration_minutes", cfg.DefaultDuration)
	v.SetDefault("chart.width", cfg.ChartWidth)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .skedconfig: %w", err)
	}

	cfg.TimeLayout = v.GetString("time.layout")
	cfg.TasksFile = v.GetString("tasks.file")
	cfg.DefaultPriority = v.GetInt("defaults.priority")
	cfg.DefaultDuration = v.GetInt("defaults.duration_minutes")
	cfg.ChartWidth = v.GetInt("chart.width")

	return cfg, nil
}
