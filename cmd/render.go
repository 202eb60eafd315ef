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
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/ioexport"
	"github.com/spf13/cobra"
)

// getRenderCmd returns the render command.
func getRenderCmd() *cobra.Command {
	var (
		year       int
		department string
		outDir     string
	)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Export the dashboard of a selection to static files",
		Long: `Render the dashboard of one year and department to a directory.

Files:
  index.html           page without the selection form
  gauge-<scope>.svg    gauges for total, hospital, center, post
  timeseries.svg       IDM time series of the department
  map.geojson          facilities (skipped if coordinates are invalid)
  model.json           complete render model

Examples:
  # Latest year, default department
  idmdash render -o export

  # A given selection
  idmdash render -y 2023 -d CUSCO -o cusco-2023`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRender(cmd, year, department, outDir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	renderCmd.Flags().IntVarP(
		&year, "year", "y", 0,
		"year of the selection (default latest)",
	)
	renderCmd.Flags().StringVarP(
		&department, "department", "d", "",
		"department of the selection, for example LIMA",
	)
	renderCmd.Flags().StringVarP(
		&outDir, "out", "o", "idm-export",
		"output directory",
	)
	addDashboardFlags(renderCmd)
	return renderCmd
}

func runRender(
	cmd *cobra.Command,
	year int,
	department string,
	outDir string,
) error {
	cfg.Update(dashboardFlagOptions(cmd))

	data, err := loadData(context.Background(), cfg)
	if err != nil {
		return err
	}
	ctrl := newController(data, cfg)

	sel := ctrl.Default()
	if year != 0 {
		sel.Year = year
	}
	if department != "" {
		sel.Department = department
	}

	m, err := ctrl.Select(sel)
	if err != nil {
		return err
	}

	files, err := ioexport.Export(m, ctrl.Filters(), outDir, true)
	if err != nil {
		return err
	}
	gn.Info("Exported %d files for <em>%s %d</em> to <em>%s</em>",
		len(files), sel.Department, sel.Year, outDir)
	return nil
}
