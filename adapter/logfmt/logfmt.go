// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logfmt provides a cyclesort.Observer that writes logfmt records.
package logfmt

import (
	"context"
	"io"
	"sync"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/cyclesort"
)

// Observer writes one logfmt record per closed cycle and one per sort.
// It is safe for concurrent use.
type Observer struct {
	// Cycles enables the per-cycle records. The summary is always written.
	Cycles bool

	mu  sync.Mutex
	enc *logfmt.Encoder
	err error
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer writing to w.
func New(w io.Writer) *Observer {
	return &Observer{Cycles: true, enc: logfmt.NewEncoder(w)}
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	return ctx
}

func (o *Observer) Cycle(_ context.Context, c cyclesort.Cycle) {
	if !o.Cycles {
		return
	}
	o.write("level", "debug", "msg", "cycle closed", "start", c.Start, "writes", c.Writes)
}

func (o *Observer) Done(_ context.Context, s cyclesort.Stats) {
	o.write(
		"level", "info",
		"msg", "sorted",
		"len", s.Len,
		"comparisons", s.Comparisons,
		"writes", s.Writes,
		"cycles", s.Cycles,
		"longest_cycle", s.LongestCycle,
	)
}

// Err returns the first error encountered writing a record.
func (o *Observer) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

func (o *Observer) write(keyvals ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return
	}
	if err := o.enc.EncodeKeyvals(keyvals...); err != nil {
		o.err = err
		return
	}
	o.err = o.enc.EndRecord()
}
