// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyclesort

import "context"

// A Cycle describes one closed cycle: the chain of elements moved into their
// final positions starting from, and ending at, index Start.
type Cycle struct {
	Start  int // index the cycle started and ended at
	Writes int // elements placed, including the one landing at Start
}

// Stats summarizes a single sort.
type Stats struct {
	Len          int // length of the sorted slice
	Comparisons  int // calls to the less function
	Writes       int // elements moved; the value the Sort functions return
	Cycles       int // cycles that made at least one write
	LongestCycle int // Writes of the longest cycle
}

// An Observer is notified of the progress of a sort run by SortObserved.
// Its methods are called synchronously on the sorting goroutine.
type Observer interface {
	// Start is called once before sorting a slice of length n. The
	// returned context is passed to Cycle and Done.
	Start(ctx context.Context, n int) context.Context
	// Cycle is called after each cycle that made writes, in order of
	// increasing c.Start.
	Cycle(ctx context.Context, c Cycle)
	// Done is called once the slice is sorted.
	Done(ctx context.Context, s Stats)
}

// SortObserved sorts x in ascending order as determined by less, reporting
// its progress to o, and returns the sort's statistics.
//
// ctx is only passed on to o; the sort itself cannot be cancelled. A nil o is
// allowed.
func SortObserved[E any](ctx context.Context, x []E, less func(a, b E) bool, o Observer) Stats {
	if o == nil {
		o = nopObserver{}
	}
	ctx = o.Start(ctx, len(x))
	s := Stats{Len: len(x)}
	lt := func(a, b E) bool {
		s.Comparisons++
		return less(a, b)
	}
	h := &hooks{cycle: func(start, writes int) {
		s.Cycles++
		if writes > s.LongestCycle {
			s.LongestCycle = writes
		}
		o.Cycle(ctx, Cycle{Start: start, Writes: writes})
	}}
	s.Writes = lessFunc[E](lt).cycleSort(x, h)
	o.Done(ctx, s)
	return s
}

// MultiObserver returns an Observer that notifies each of obs in turn.
// Nil observers are skipped.
func MultiObserver(obs ...Observer) Observer {
	var m multiObserver
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

type multiObserver []Observer

func (m multiObserver) Start(ctx context.Context, n int) context.Context {
	for _, o := range m {
		ctx = o.Start(ctx, n)
	}
	return ctx
}

func (m multiObserver) Cycle(ctx context.Context, c Cycle) {
	for _, o := range m {
		o.Cycle(ctx, c)
	}
}

func (m multiObserver) Done(ctx context.Context, s Stats) {
	for _, o := range m {
		o.Done(ctx, s)
	}
}

type nopObserver struct{}

func (nopObserver) Start(ctx context.Context, _ int) context.Context { return ctx }
func (nopObserver) Cycle(context.Context, Cycle) {}
func (nopObserver) Done(context.Context, Stats) {}
