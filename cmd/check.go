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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/ioload"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate datasets of the dashboard",
		Long: `Load every dataset listed in datasets.yaml and report problems.

The report contains:
  - row count of every dataset
  - duplicate (department, year) pairs of annual tables
  - result of the facility coordinates validation

The command fails if a dataset cannot be loaded or facility
coordinates are invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return checkCmd
}

func runCheck(w io.Writer) error {
	ctx := context.Background()
	m, err := loadManifest(cfg)
	if err != nil {
		return err
	}
	l, done, err := newLoader(cfg)
	if err != nil {
		return err
	}
	defer done()

	tables, err := ioload.LoadTables(ctx, l, m, cfg.JobsNumber)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Datasets:")
	for _, k := range datasets.Kinds {
		t, ok := tables[k]
		if !ok {
			fmt.Fprintf(w, "  %-16s not loaded\n", k)
			continue
		}
		fmt.Fprintf(w, "  %-16s %s rows\n", k, humanize.Comma(int64(t.Len())))
	}

	// tables are memoized, decoding does not read storage again
	data, err := ioload.LoadData(ctx, l, m, cfg.JobsNumber)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Duplicates:")
	var dups int
	for _, s := range idm.Scopes {
		for _, v := range idm.Duplicates(data.Annual[s]) {
			dups++
			fmt.Fprintf(w, "  %-16s %s %d\n",
				datasets.AnnualKinds[s], v.Department, v.Year)
		}
	}
	if dups == 0 {
		fmt.Fprintln(w, "  none")
	}

	fmt.Fprintln(w, "Facility coordinates:")
	if data.GeoErr != nil {
		fmt.Fprintf(w, "  %s\n", idm.ErrorMessage(data.GeoErr))
		return data.GeoErr
	}
	fmt.Fprintf(w, "  ok, %s facilities\n",
		humanize.Comma(int64(len(data.Facilities))))
	return nil
}
