// Package templates provides embedded configuration templates and the
// dashboard page.
package templates

import _ "embed"

// DatasetsYAML contains the default datasets.yaml manifest.
//
//go:embed datasets.yaml
var DatasetsYAML string

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string

// DashboardHTML is the html/template of the dashboard page.
//
//go:embed dashboard.html
var DashboardHTML string
