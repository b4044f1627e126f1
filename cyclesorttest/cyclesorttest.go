// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cyclesorttest provides utilities for testing code that sorts with
// package cyclesort.
package cyclesorttest

import (
	"context"

	"golang.org/x/exp/cyclesort"
	"golang.org/x/xerrors"
)

// Recorder is a cyclesort.Observer that remembers everything it is told.
type Recorder struct {
	Starts []int
	Cycles []cyclesort.Cycle
	Stats  []cyclesort.Stats
}

var _ cyclesort.Observer = (*Recorder)(nil)

func (r *Recorder) Start(ctx context.Context, n int) context.Context {
	r.Starts = append(r.Starts, n)
	return ctx
}

func (r *Recorder) Cycle(_ context.Context, c cyclesort.Cycle) {
	r.Cycles = append(r.Cycles, c)
}

func (r *Recorder) Done(_ context.Context, s cyclesort.Stats) {
	r.Stats = append(r.Stats, s)
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.Starts = r.Starts[:0]
	r.Cycles = r.Cycles[:0]
	r.Stats = r.Stats[:0]
}

// Sorted returns an error describing the first adjacent pair of x that is
// out of order according to less.
func Sorted[E any](x []E, less func(a, b E) bool) error {
	for i := 1; i < len(x); i++ {
		if less(x[i], x[i-1]) {
			return xerrors.Errorf("cyclesorttest: x[%d] = %v is less than x[%d] = %v", i, x[i], i-1, x[i-1])
		}
	}
	return nil
}

// Permutation returns an error if got does not hold the same elements as
// want, counting repeats. NaNs never match.
func Permutation[E comparable](want, got []E) error {
	if len(want) != len(got) {
		return xerrors.Errorf("cyclesorttest: length changed from %d to %d", len(want), len(got))
	}
	counts := make(map[E]int, len(want))
	for _, e := range want {
		counts[e]++
	}
	for _, e := range got {
		counts[e]--
	}
	for _, e := range want {
		if c := counts[e]; c > 0 {
			return xerrors.Errorf("cyclesorttest: %v lost %d time(s)", e, c)
		}
	}
	for _, e := range got {
		if c := counts[e]; c < 0 {
			return xerrors.Errorf("cyclesorttest: %v gained %d time(s)", e, -c)
		}
	}
	return nil
}

// Moved returns the number of positions whose element differs between
// before and after. It panics if the lengths differ.
func Moved[E comparable](before, after []E) int {
	if len(before) != len(after) {
		panic("cyclesorttest: Moved of slices with different lengths")
	}
	n := 0
	for i := range before {
		if before[i] != after[i] {
			n++
		}
	}
	return n
}

// Verify checks that after is a sorted permutation of before. If the
// elements of before are distinct it also checks that writes is the number
// of positions that changed, which is the least any sort could make.
func Verify[E comparable](before, after []E, writes int, less func(a, b E) bool) error {
	if err := Permutation(before, after); err != nil {
		return err
	}
	if err := Sorted(after, less); err != nil {
		return err
	}
	if !distinct(before) {
		return nil
	}
	if moved := Moved(before, after); writes != moved {
		return xerrors.Errorf("cyclesorttest: %d writes, but %d positions changed", writes, moved)
	}
	return nil
}

func distinct[E comparable](x []E) bool {
	seen := make(map[E]bool, len(x))
	for _, e := range x {
		if seen[e] {
			return false
		}
		seen[e] = true
	}
	return true
}
