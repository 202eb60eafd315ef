/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/iofs"
	"github.com/gnames/idmdash/internal/iologger"
	idmdash "github.com/gnames/idmdash/pkg"
	"github.com/gnames/idmdash/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", idmdash.Version, idmdash.Build),
		Use:     "idmdash",
		Short:   "Dashboard of the Peru medicine availability index (IDM)",
		Long: `idmdash shows the Medicine Availability Index (Índice de
Disponibilidad de Medicamentos, IDM) of Peruvian health facilities.

For a selected year and department it draws four gauges (all
facilities, hospitals, health centers, health posts), a map of
facilities, the IDM time series and a ranking of medicine groups that
are most often out of stock.

Datasets are xlsx spreadsheets listed in ~/.config/idmdash/datasets.yaml,
or a SQLite snapshot made by 'idmdash snapshot'.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (IDMDASH_*)
  3. Config file (~/.config/idmdash/config.yaml)
  4. Built-in defaults

Environment variables use underscores for nested fields, for example
IDMDASH_SERVER_PORT, IDMDASH_DASHBOARD_TOP_LIMIT, IDMDASH_LOG_LEVEL.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "idmdash version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for idmdash")

	addDataFlags(rootCmd)

	rootCmd.AddCommand(
		getServeCmd(),
		getRenderCmd(),
		getCheckCmd(),
		getSnapshotCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = initLogging(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureDatasetsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, dataFlagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = initLogging(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"data_dir", cfg.Data.Dir,
		"backend", cfg.Data.Backend,
	)
	return nil
}

func initLogging(logDir string, lc config.LogConfig) error {
	if logCloser != nil {
		_ = logCloser.Close()
	}
	var err error
	logCloser, err = iologger.Init(logDir, lc)
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	err := getRootCmd().Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("IDMDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Data configuration
	_ = v.BindEnv("data.dir", "IDMDASH_DATA_DIR")
	_ = v.BindEnv("data.backend", "IDMDASH_DATA_BACKEND")
	_ = v.BindEnv("data.snapshot", "IDMDASH_DATA_SNAPSHOT")

	// Server configuration
	_ = v.BindEnv("server.port", "IDMDASH_SERVER_PORT")

	// Dashboard configuration
	_ = v.BindEnv("dashboard.default_department", "IDMDASH_DASHBOARD_DEFAULT_DEPARTMENT")
	_ = v.BindEnv("dashboard.default_year", "IDMDASH_DASHBOARD_DEFAULT_YEAR")
	_ = v.BindEnv("dashboard.map_centering", "IDMDASH_DASHBOARD_MAP_CENTERING")
	_ = v.BindEnv("dashboard.poor_floor", "IDMDASH_DASHBOARD_POOR_FLOOR")
	_ = v.BindEnv("dashboard.top_limit", "IDMDASH_DASHBOARD_TOP_LIMIT")

	// Log configuration
	_ = v.BindEnv("log.level", "IDMDASH_LOG_LEVEL")
	_ = v.BindEnv("log.format", "IDMDASH_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "IDMDASH_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "IDMDASH_JOBS_NUMBER")

	v.AutomaticEnv()
}
