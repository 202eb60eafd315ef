package iodatasets

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/pkg/errcode"
)

// DatasetsConfigError creates an error for when datasets.yaml
// cannot be loaded.
func DatasetsConfigError(path string, err error) error {
	msg := `Cannot load datasets manifest

<em>Manifest file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - A required dataset is not listed

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to get the default manifest on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.DatasetsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load datasets manifest: %w", err),
	}
}
