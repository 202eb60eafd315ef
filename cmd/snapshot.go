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
	"log/slog"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/idmdash/internal/ioexport"
	"github.com/gnames/idmdash/internal/iofs"
	"github.com/gnames/idmdash/internal/ioload"
	"github.com/gnames/idmdash/internal/iosnapshot"
	"github.com/gnames/idmdash/pkg/datasets"
	"github.com/spf13/cobra"
)

// getSnapshotCmd returns the snapshot command.
func getSnapshotCmd() *cobra.Command {
	var outPath string

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy xlsx datasets into a SQLite snapshot",
		Long: `Read every dataset listed in datasets.yaml from xlsx files and
save it as a table of a SQLite file. With 'data.backend: sqlite' (or
-b sqlite) other commands read the snapshot instead of spreadsheets.

Default location: ~/.cache/idmdash/idm.sqlite

Examples:
  idmdash snapshot
  idmdash snapshot -o /tmp/idm.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSnapshot(outPath)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	snapshotCmd.Flags().StringVarP(
		&outPath, "out", "o", "",
		"path of the snapshot file",
	)
	return snapshotCmd
}

func runSnapshot(outPath string) error {
	ctx := context.Background()
	if outPath == "" {
		outPath = cfg.SnapshotFilePath()
	}
	if err := iofs.TouchDir(filepath.Dir(outPath)); err != nil {
		return err
	}

	m, err := loadManifest(cfg)
	if err != nil {
		return err
	}

	snap, err := iosnapshot.Open(outPath)
	if err != nil {
		return err
	}
	defer snap.Close()

	bar := ioexport.NewProgressBar(len(datasets.Kinds), "Snapshot: ")
	count, err := writeSnapshot(ctx, snap, m, func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		return err
	}

	gn.Info("Saved %d datasets to <em>%s</em>", count, outPath)
	return nil
}

// writeSnapshot copies complete xlsx tables of the manifest into the
// snapshot. It calls step once per dataset kind.
func writeSnapshot(
	ctx context.Context,
	snap *iosnapshot.Snapshot,
	m *datasets.Manifest,
	step func(),
) (int, error) {
	src := ioload.NewXLSX(cfg.Data.Dir)
	l := ioload.NewLoader(src)

	var res int
	for _, k := range datasets.Kinds {
		step()
		name := src.Locate(m, k)
		if name == "" {
			continue
		}
		t, err := l.Load(ctx, name)
		if err != nil {
			if k.Optional() {
				slog.Warn("Optional dataset is skipped", "kind", k, "error", err)
				continue
			}
			return res, err
		}
		if err = snap.Write(ctx, string(k), t); err != nil {
			return res, err
		}
		res++
	}
	return res, nil
}
