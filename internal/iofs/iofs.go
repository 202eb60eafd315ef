// Package iofs prepares directories and configuration files of the
// application and writes output files.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/gnames/idmdash/pkg/config"
	"github.com/gnames/idmdash/pkg/templates"
)

// EnsureDirs creates config, cache and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := TouchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// TouchDir creates a directory with its parents if it does not exist.
func TouchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user
// already has one.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), templates.ConfigYAML)
}

// EnsureDatasetsFile writes the default datasets.yaml unless the user
// already has one.
func EnsureDatasetsFile(homeDir string) error {
	return ensureFile(config.DatasetsFilePath(homeDir), templates.DatasetsYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return TemplateFileError(path, err)
	}
	return nil
}

// WriteFile writes data to dir/name creating dir when needed.
func WriteFile(dir, name string, data []byte) error {
	if err := TouchDir(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
