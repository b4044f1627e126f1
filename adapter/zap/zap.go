// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides a cyclesort.Observer that logs to a zap.Logger.
package zap

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/exp/cyclesort"
)

// Observer logs each closed cycle and a summary of every sort.
type Observer struct {
	l *zap.Logger
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer that logs each closed cycle at debug level and a
// summary of every sort at info level. A nil l uses zap.L().
func New(l *zap.Logger) *Observer {
	if l == nil {
		l = zap.L()
	}
	return &Observer{l: l}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(_ context.Context, c cyclesort.Cycle) {
	if ce := o.l.Check(zap.DebugLevel, "cycle closed"); ce != nil {
		ce.Write(zap.Int("start", c.Start), zap.Int("writes", c.Writes))
	}
}

func (o *Observer) Done(_ context.Context, s cyclesort.Stats) {
	if ce := o.l.Check(zap.InfoLevel, "sorted"); ce != nil {
		ce.Write(
			zap.Int("len", s.Len),
			zap.Int("comparisons", s.Comparisons),
			zap.Int("writes", s.Writes),
			zap.Int("cycles", s.Cycles),
			zap.Int("longest_cycle", s.LongestCycle),
		)
	}
}
