package cmd

import (
	"github.com/gnames/idmdash/pkg/config"
	"github.com/spf13/cobra"
)

// addDataFlags adds flags shared by all commands that read datasets.
func addDataFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(
		"data-dir", "D", "",
		"directory with dataset spreadsheets",
	)
	cmd.PersistentFlags().StringP(
		"backend", "b", "",
		"read datasets from 'xlsx' files or 'sqlite' snapshot",
	)
	cmd.PersistentFlags().StringP(
		"snapshot", "S", "",
		"path to the SQLite snapshot",
	)
	cmd.PersistentFlags().IntP(
		"jobs", "j", 0,
		"number of datasets loaded concurrently",
	)
}

// addDashboardFlags adds flags that change how the dashboard looks.
func addDashboardFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(
		"centering", "c", "",
		"map centering: 'national' or 'first_record'",
	)
	cmd.Flags().Float64P(
		"poor-floor", "f", 0,
		"lower bound of the 'Muy mal' band of the time series (0..50)",
	)
	cmd.Flags().IntP(
		"top", "t", 0,
		"number of medicine groups in the shortage ranking",
	)
}

// dataFlagOptions converts changed data flags to config options.
func dataFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		s, _ := flags.GetString("data-dir")
		res = append(res, config.OptDataDir(s))
	}
	if flags.Changed("backend") {
		s, _ := flags.GetString("backend")
		res = append(res, config.OptDataBackend(s))
	}
	if flags.Changed("snapshot") {
		s, _ := flags.GetString("snapshot")
		res = append(res, config.OptDataSnapshot(s))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}

// dashboardFlagOptions converts changed dashboard flags to config
// options.
func dashboardFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("centering") {
		s, _ := flags.GetString("centering")
		res = append(res, config.OptDashboardMapCentering(s))
	}
	if flags.Changed("poor-floor") {
		f, _ := flags.GetFloat64("poor-floor")
		res = append(res, config.OptDashboardPoorFloor(f))
	}
	if flags.Changed("top") {
		i, _ := flags.GetInt("top")
		res = append(res, config.OptDashboardTopLimit(i))
	}
	return res
}
