// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a cyclesort.Observer that logs to a go-kit logger.
package gokit

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/cyclesort"
)

// Observer logs each closed cycle and a summary of every sort.
type Observer struct {
	l log.Logger
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer that logs each closed cycle with level.Debug and
// a summary of every sort with level.Info. Filtering is left to l, for
// instance through level.NewFilter.
func New(l log.Logger) *Observer {
	if l == nil {
		l = log.NewNopLogger()
	}
	return &Observer{l: l}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(_ context.Context, c cyclesort.Cycle) {
	// go-kit leaves Log errors to the logger to handle.
	_ = level.Debug(o.l).Log("msg", "cycle closed", "start", c.Start, "writes", c.Writes)
}

func (o *Observer) Done(_ context.Context, s cyclesort.Stats) {
	_ = level.Info(o.l).Log(
		"msg", "sorted",
		"len", s.Len,
		"comparisons", s.Comparisons,
		"writes", s.Writes,
		"cycles", s.Cycles,
		"longest_cycle", s.LongestCycle,
	)
}
