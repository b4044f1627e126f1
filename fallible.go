// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyclesort

import "golang.org/x/xerrors"

// compareError carries a comparison failure out of the sorting loop.
type compareError struct {
	err error
}

// SortFuncErr is like SortFunc for a comparison function that can fail.
//
// The first error returned by cmp stops the sort. SortFuncErr then returns
// the error, wrapped, together with the number of writes made before the
// failure, counting those of the interrupted cycle and the one that puts its
// element back. The slice is left as a permutation of its input in an
// unspecified order; this also holds if cmp panics.
func SortFuncErr[E any](x []E, cmp func(a, b E) (int, error)) (writes int, err error) {
	lt := func(a, b E) bool {
		c, cerr := cmp(a, b)
		if cerr != nil {
			panic(compareError{cerr})
		}
		return c < 0
	}
	h := &hooks{restore: true}
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(compareError)
			if !ok {
				panic(r)
			}
			writes, err = h.aborted, xerrors.Errorf("cyclesort: compare: %w", ce.err)
		}
	}()
	return lessFunc[E](lt).cycleSort(x, h), nil
}
