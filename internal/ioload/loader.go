// Package ioload reads datasets into memory once per process.
package ioload

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/idmdash/pkg/table"
	"golang.org/x/sync/singleflight"
)

// Loader memoizes tables read from a Source. Repeated calls with the
// same name and columns return the same *table.Table without touching
// storage. It is safe for concurrent use.
type Loader struct {
	src Source

	mu   sync.Mutex
	raw  map[string]*table.Table
	memo map[string]*table.Table

	group singleflight.Group
	reads atomic.Int64
}

// NewLoader creates a Loader for a Source.
func NewLoader(src Source) *Loader {
	return &Loader{
		src:  src,
		raw:  make(map[string]*table.Table),
		memo: make(map[string]*table.Table),
	}
}

// Source returns the storage of the loader.
func (l *Loader) Source() Source {
	return l.src
}

// Reads returns how many times the storage was accessed.
func (l *Loader) Reads() int {
	return int(l.reads.Load())
}

// Load returns the table called name. With columns the result keeps
// only these columns in the given order.
func (l *Loader) Load(
	ctx context.Context,
	name string,
	columns ...string,
) (*table.Table, error) {
	key := memoKey(name, columns)
	l.mu.Lock()
	res, ok := l.memo[key]
	l.mu.Unlock()
	if ok {
		return res, nil
	}

	raw, err := l.readRaw(ctx, name)
	if err != nil {
		return nil, DataLoadError(name, err)
	}

	res = raw
	if len(columns) > 0 {
		if res, err = raw.Project(columns...); err != nil {
			return nil, DataLoadError(name, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// a concurrent caller might have stored the same projection
	if v, ok := l.memo[key]; ok {
		return v, nil
	}
	l.memo[key] = res
	return res, nil
}

func (l *Loader) readRaw(ctx context.Context, name string) (*table.Table, error) {
	l.mu.Lock()
	res, ok := l.raw[name]
	l.mu.Unlock()
	if ok {
		return res, nil
	}

	v, err, _ := l.group.Do(name, func() (any, error) {
		l.mu.Lock()
		t, ok := l.raw[name]
		l.mu.Unlock()
		if ok {
			return t, nil
		}

		start := time.Now()
		l.reads.Add(1)
		t, err := l.src.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		slog.Info("Dataset loaded",
			"name", name,
			"rows", humanize.Comma(int64(t.Len())),
			"duration", gnfmt.TimeString(time.Since(start).Seconds()),
		)

		l.mu.Lock()
		l.raw[name] = t
		l.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*table.Table), nil
}

func memoKey(name string, columns []string) string {
	return fmt.Sprintf("%s\x00%s", name, strings.Join(columns, "\x00"))
}
