package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDataDir sets the directory with dataset spreadsheets.
func OptDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Dir", s) {
			c.Data.Dir = s
		}
	}
}

// OptDataBackend sets the storage the loader reads datasets from.
// Valid values: "xlsx", "sqlite".
func OptDataBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Data.Backend", s) {
			c.Data.Backend = s
		}
	}
}

// OptDataSnapshot sets the path to the SQLite snapshot file.
func OptDataSnapshot(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Snapshot", s) {
			c.Data.Snapshot = s
		}
	}
}

// OptServerPort sets the port of the dashboard web server.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptDashboardDefaultDepartment sets the department selected on start.
// Department names are kept upper-case, the way datasets spell them.
func OptDashboardDefaultDepartment(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return func(c *Config) {
		if isValidString("Default Department", s) {
			c.Dashboard.DefaultDepartment = s
		}
	}
}

// OptDashboardDefaultYear sets the year selected on start.
func OptDashboardDefaultYear(i int) Option {
	return func(c *Config) {
		if isValidInt("Default Year", i) {
			c.Dashboard.DefaultYear = i
		}
	}
}

// OptDashboardMapCentering sets how the facility map is centered.
// Valid values: "national", "first_record".
func OptDashboardMapCentering(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Dashboard.MapCentering", s) {
			c.Dashboard.MapCentering = s
		}
	}
}

// OptDashboardPoorFloor sets the lower bound of the Poor band on the
// time-series chart.
func OptDashboardPoorFloor(f float64) Option {
	return func(c *Config) {
		if isValidFloor("Poor Floor", f) {
			c.Dashboard.PoorFloor = f
		}
	}
}

// OptDashboardTopLimit sets the number of rows in the shortage ranking.
func OptDashboardTopLimit(i int) Option {
	return func(c *Config) {
		if isValidInt("Top Limit", i) {
			c.Dashboard.TopLimit = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of datasets loaded concurrently.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
