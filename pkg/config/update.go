package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Data.Dir
	if s != "" {
		res = append(res, OptDataDir(s))
	}
	s = c.Data.Backend
	if s != "" {
		res = append(res, OptDataBackend(s))
	}
	s = c.Data.Snapshot
	if s != "" {
		res = append(res, OptDataSnapshot(s))
	}

	i = c.Server.Port
	if i > 0 {
		res = append(res, OptServerPort(i))
	}

	s = c.Dashboard.DefaultDepartment
	if s != "" {
		res = append(res, OptDashboardDefaultDepartment(s))
	}
	i = c.Dashboard.DefaultYear
	if i > 0 {
		res = append(res, OptDashboardDefaultYear(i))
	}
	s = c.Dashboard.MapCentering
	if s != "" {
		res = append(res, OptDashboardMapCentering(s))
	}
	if c.Dashboard.PoorFloor != 0 {
		res = append(res, OptDashboardPoorFloor(c.Dashboard.PoorFloor))
	}
	i = c.Dashboard.TopLimit
	if i > 0 {
		res = append(res, OptDashboardTopLimit(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

// isValidFloor accepts values strictly between 0 and 50, the lower
// edge of the Fair band.
func isValidFloor(name string, f float64) bool {
	res := f > 0 && f < 50
	if !res {
		gn.Warn("<em>%s</em> has to be between 0 and 50, ignoring %v", name, f)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Data.Backend":           {"xlsx": s, "sqlite": s},
		"Dashboard.MapCentering": {"national": s, "first_record": s},
		"Log.Level":              {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":             {"json": s, "text": s},
		"Log.Destination":        {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
