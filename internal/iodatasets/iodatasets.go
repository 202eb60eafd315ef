// Package iodatasets reads datasets.yaml from the config directory.
package iodatasets

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/idmdash/pkg/config"
	"github.com/gnames/idmdash/pkg/datasets"
	"gopkg.in/yaml.v3"
)

type iodatasets struct {
	path string
}

// New creates a manifest reader for the datasets.yaml of a home
// directory.
func New(cfg *config.Config) datasets.Manifests {
	return &iodatasets{path: config.DatasetsFilePath(cfg.HomeDir)}
}

// NewFromPath creates a manifest reader for an explicit file.
func NewFromPath(path string) datasets.Manifests {
	return &iodatasets{path: path}
}

func (d *iodatasets) Load() (*datasets.Manifest, error) {
	res, err := LoadManifest(d.path)
	if err != nil {
		return nil, DatasetsConfigError(d.path, err)
	}
	return res, nil
}

// LoadManifest reads and validates a datasets manifest.
func LoadManifest(path string) (*datasets.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read datasets manifest: %w", err)
	}

	var res datasets.Manifest
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse datasets manifest: %w", err)
	}

	if err = res.Validate(); err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		slog.Warn("Datasets manifest warning",
			"kind", w.Kind,
			"message", w.Message,
			"suggestion", w.Suggestion)
	}

	return &res, nil
}
