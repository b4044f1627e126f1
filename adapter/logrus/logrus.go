// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a cyclesort.Observer that logs through logrus.
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/cyclesort"
)

// Observer logs each closed cycle and a summary of every sort.
type Observer struct {
	l logrus.FieldLogger
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer that logs each closed cycle at debug level and a
// summary of every sort at info level. A nil l uses logrus.StandardLogger().
func New(l logrus.FieldLogger) *Observer {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Observer{l: l}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(_ context.Context, c cyclesort.Cycle) {
	o.l.WithFields(logrus.Fields{
		"start":  c.Start,
		"writes": c.Writes,
	}).Debug("cycle closed")
}

func (o *Observer) Done(_ context.Context, s cyclesort.Stats) {
	o.l.WithFields(logrus.Fields{
		"len":           s.Len,
		"comparisons":   s.Comparisons,
		"writes":        s.Writes,
		"cycles":        s.Cycles,
		"longest_cycle": s.LongestCycle,
	}).Info("sorted")
}
