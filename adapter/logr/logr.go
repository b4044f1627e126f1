// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr provides a cyclesort.Observer that logs to a logr.Logger.
package logr

import (
	"context"

	"github.com/go-logr/logr"
	"golang.org/x/exp/cyclesort"
)

// CycleVerbosity is the V-level cycle records are logged at.
const CycleVerbosity = 1

// Observer logs each closed cycle and a summary of every sort.
type Observer struct {
	l logr.Logger
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer that logs each closed cycle at V(CycleVerbosity)
// and a summary of every sort at V(0).
func New(l logr.Logger) *Observer {
	return &Observer{l: l}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(_ context.Context, c cyclesort.Cycle) {
	o.l.V(CycleVerbosity).Info("cycle closed", "start", c.Start, "writes", c.Writes)
}

func (o *Observer) Done(_ context.Context, s cyclesort.Stats) {
	o.l.Info("sorted",
		"len", s.Len,
		"comparisons", s.Comparisons,
		"writes", s.Writes,
		"cycles", s.Cycles,
		"longest_cycle", s.LongestCycle)
}
