// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cyclesort implements cycle sort, an unstable in-place comparison
// sort that performs the minimum possible number of writes to the slice being
// sorted.
//
// Every element is written at most once: an element already in its final
// position is never touched, and every other element is moved directly to
// where it belongs. The price is O(n²) comparisons in every case, including
// input that is already sorted. Cycle sort is therefore only worth using when
// writes are much more expensive than comparisons (flash or EEPROM backed
// storage, for instance) and n is small. Callers with large inputs may want to
// check IsSorted before sorting.
//
// All sorting functions return the number of writes made. A write is one
// element moved into a slot; the count equals the number of positions whose
// final occupant differs from their original occupant when the elements are
// distinct.
//
// Equal elements may be reordered.
//
// # Comparison functions
//
// The less, cmp and key functions must describe a strict weak ordering; this
// is not checked. An inconsistent ordering still terminates and leaves the
// slice as some unspecified permutation of its input.
//
// If a comparison or key function panics, the panic propagates to the caller
// and the slice is left in an unspecified state: the element being relocated
// at the time may be missing and another element duplicated in its place.
// Use SortFuncErr for comparisons that can fail; it always leaves the slice a
// permutation of its input.
//
// The slice must not be read or written by anything else while it is being
// sorted. Sorts of disjoint slices may run concurrently.
package cyclesort
