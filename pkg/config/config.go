// Package config provides configuration management for idmdash.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: dir, backend, snapshot
//   - Server: port
//   - Dashboard: default_department, default_year, map_centering,
//     poor_floor, top_limit
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (set once at startup):
//   - HomeDir
//
// # Environment Variables
//
// Use IDMDASH_ prefix with underscores for nesting:
//
//	IDMDASH_DATA_DIR=/srv/idm/data
//	IDMDASH_SERVER_PORT=8501
//	IDMDASH_DASHBOARD_POOR_FLOOR=40
//	IDMDASH_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete idmdash configuration.
type Config struct {
	// Data describes where the pre-aggregated IDM datasets are stored.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	// Server contains settings of the dashboard web server.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Dashboard contains presentation settings of the dashboard.
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of datasets loaded concurrently at startup.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DataConfig points to the datasets of the dashboard.
type DataConfig struct {
	// Dir is the directory with spreadsheet files listed in datasets.yaml.
	// Relative paths are resolved from the current working directory.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Backend selects the storage the loader reads from.
	// Valid values: "xlsx", "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Snapshot is the path to the SQLite snapshot file. When empty,
	// the file is kept in the cache directory.
	Snapshot string `mapstructure:"snapshot" yaml:"snapshot"`
}

// ServerConfig contains web server settings.
type ServerConfig struct {
	// Port the dashboard server listens on.
	Port int `mapstructure:"port" yaml:"port"`
}

// DashboardConfig keeps the tunable parts of the dashboard presentation.
type DashboardConfig struct {
	// DefaultDepartment is selected when a user did not pick a department.
	DefaultDepartment string `mapstructure:"default_department" yaml:"default_department"`

	// DefaultYear is selected when a user did not pick a year.
	// Zero means the latest available year.
	DefaultYear int `mapstructure:"default_year" yaml:"default_year"`

	// MapCentering decides how the facility map is centered.
	// Valid values: "national" (fixed point of Peru, coarse zoom),
	// "first_record" (first facility of the selection, closer zoom).
	MapCentering string `mapstructure:"map_centering" yaml:"map_centering"`

	// PoorFloor is the lower bound of the Poor band drawn on the
	// time-series chart. Must be within (0, 50).
	PoorFloor float64 `mapstructure:"poor_floor" yaml:"poor_floor"`

	// TopLimit is the maximum number of rows of the shortage ranking.
	TopLimit int `mapstructure:"top_limit" yaml:"top_limit"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Data: DataConfig{
			Dir:     "data",
			Backend: "xlsx",
		},
		Server: ServerConfig{
			Port: 8501,
		},
		Dashboard: DashboardConfig{
			DefaultDepartment: "AMAZONAS",
			MapCentering:      "national",
			PoorFloor:         40,
			TopLimit:          15,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
