// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyclesort

import "unsafe"

type lessFunc[E any] func(a, b E) bool

// hooks customizes a single run of cycleSort.
type hooks struct {
	// cycle, if non-nil, is called after each cycle that made writes.
	cycle func(start, writes int)
	// restore puts the element being relocated back into the cycle's
	// starting slot if the comparison function panics, and records the
	// writes made up to that point in aborted.
	restore bool
	aborted int
}

func (lt lessFunc[E]) equal(a, b E) bool {
	return !lt(a, b) && !lt(b, a)
}

// rank returns the position of x counting from src: src plus the number of
// elements in list[src+1:] that are less than x.
func (lt lessFunc[E]) rank(list []E, src int, x E) int {
	dst := src
	for i := src + 1; i < len(list); i++ {
		if lt(list[i], x) {
			dst++
		}
	}
	return dst
}

func (lt lessFunc[E]) cycleSort(list []E, h *hooks) int {
	n := len(list)
	var zero E
	if unsafe.Sizeof(zero) == 0 || n < 2 {
		return 0
	}

	var (
		src    int
		tmp    E
		held   bool
		w      int // writes in the current cycle
		writes int
	)
	if h != nil && h.restore {
		defer func() {
			if !held {
				return
			}
			// list[src] still holds a stale copy of an element that has
			// already been placed elsewhere.
			if w > 0 {
				list[src] = tmp
				w++
			}
			h.aborted = writes + w
		}()
	}

	for src = 0; src < n-1; src++ {
		w = 0
		tmp = list[src]
		held = true
		dst := lt.rank(list, src, tmp)
		if dst == src {
			held = false
			continue
		}

		for {
			// Land after any elements equal to tmp.
			for dst < n && lt.equal(tmp, list[dst]) {
				dst++
			}
			// A strict weak ordering never needs more than n-src writes
			// per cycle nor skips past the end. Anything else is an
			// inconsistent ordering; abandon the cycle, keeping list a
			// permutation.
			if dst == n || w == n-src {
				list[src] = tmp
				w++
				break
			}
			tmp, list[dst] = list[dst], tmp
			w++
			if dst == src {
				break
			}
			dst = lt.rank(list, src, tmp)
		}
		held = false
		writes += w
		if h != nil && h.cycle != nil {
			h.cycle(src, w)
		}
	}
	return writes
}

func (lt lessFunc[E]) isSorted(list []E) bool {
	for i := len(list) - 1; i > 0; i-- {
		if lt(list[i], list[i-1]) {
			return false
		}
	}
	return true
}
