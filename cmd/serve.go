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
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/ioweb"
	"github.com/gnames/idmdash/pkg/config"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the IDM dashboard web server",
		Long: `Load all datasets and serve the interactive dashboard.

The page is available at http://localhost:PORT/, JSON, SVG and GeoJSON
views of the same data are under /api/v1/.

The server stops gracefully on Ctrl-C (SIGINT) or SIGTERM.

Examples:
  # Serve with settings from config.yaml
  idmdash serve

  # Use another port and center the map on the first facility
  idmdash serve -p 8080 -c first_record

  # Read datasets from a SQLite snapshot
  idmdash serve -b sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runServe(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().IntP("port", "p", 0, "port of the web server")
	addDashboardFlags(serveCmd)
	return serveCmd
}

func runServe(cmd *cobra.Command) error {
	flagOpts := dashboardFlagOptions(cmd)
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		flagOpts = append(flagOpts, config.OptServerPort(port))
	}
	cfg.Update(flagOpts)

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	data, err := loadData(ctx, cfg)
	if err != nil {
		return err
	}

	srv := ioweb.New(newController(data, cfg), cfg.Server.Port)
	gn.Info("Dashboard is running at <em>http://localhost:%d</em>",
		cfg.Server.Port)
	return srv.Run(ctx)
}
