package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "idmdash"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/idmdash by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/idmdash by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/idmdash/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/idmdash/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the full path to the datasets.yaml file.
// Returns ~/.config/idmdash/datasets.yaml by default.
func DatasetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "datasets.yaml")
}

// SnapshotFilePath returns the path of the SQLite snapshot. The
// configured Data.Snapshot wins, otherwise the file lives in the
// cache directory.
func (c *Config) SnapshotFilePath() string {
	if c.Data.Snapshot != "" {
		return c.Data.Snapshot
	}
	return filepath.Join(CacheDir(c.HomeDir), "idm.sqlite")
}
