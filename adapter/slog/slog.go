// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slog provides a cyclesort.Observer that logs to a slog.Logger.
package slog

import (
	"context"

	"golang.org/x/exp/cyclesort"
	"golang.org/x/exp/slog"
)

// Observer logs each closed cycle at debug level and a summary of every
// sort at info level.
type Observer struct {
	l *slog.Logger
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer that logs to l, or to slog.Default() if l is nil.
func New(l *slog.Logger) *Observer {
	if l == nil {
		l = slog.Default()
	}
	return &Observer{l: l}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(ctx context.Context, c cyclesort.Cycle) {
	o.l.LogAttrs(ctx, slog.LevelDebug, "cycle closed",
		slog.Int("start", c.Start),
		slog.Int("writes", c.Writes))
}

func (o *Observer) Done(ctx context.Context, s cyclesort.Stats) {
	o.l.LogAttrs(ctx, slog.LevelInfo, "sorted",
		slog.Int("len", s.Len),
		slog.Int("comparisons", s.Comparisons),
		slog.Int("writes", s.Writes),
		slog.Int("cycles", s.Cycles),
		slog.Int("longest_cycle", s.LongestCycle))
}
