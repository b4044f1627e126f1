// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a cyclesort.Observer that logs to a zerolog.Logger.
package zerolog

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/exp/cyclesort"
)

// Observer logs each closed cycle and a summary of every sort.
type Observer struct {
	l zerolog.Logger
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer that logs each closed cycle at debug level and a
// summary of every sort at info level.
func New(l zerolog.Logger) *Observer {
	return &Observer{l: l}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(_ context.Context, c cyclesort.Cycle) {
	o.l.Debug().
		Int("start", c.Start).
		Int("writes", c.Writes).
		Msg("cycle closed")
}

func (o *Observer) Done(_ context.Context, s cyclesort.Stats) {
	o.l.Info().
		Int("len", s.Len).
		Int("comparisons", s.Comparisons).
		Int("writes", s.Writes).
		Int("cycles", s.Cycles).
		Int("longest_cycle", s.LongestCycle).
		Msg("sorted")
}
