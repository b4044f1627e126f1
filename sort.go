// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cyclesort

import "golang.org/x/exp/constraints"

// Sort sorts a slice of any ordered type in ascending order and returns the
// number of writes made.
// When sorting floating-point numbers, NaNs are ordered before other values.
func Sort[E constraints.Ordered](x []E) int {
	return lessFunc[E](cmpLess[E]).cycleSort(x, nil)
}

// SortFunc sorts the slice x in ascending order as determined by the cmp
// function and returns the number of writes made.
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b and zero when a == b.
func SortFunc[E any](x []E, cmp func(a, b E) int) int {
	lt := func(a, b E) bool { return cmp(a, b) < 0 }
	return lessFunc[E](lt).cycleSort(x, nil)
}

// SortByKey sorts the slice x in ascending order of the keys returned by key
// and returns the number of writes made. key is called twice for every
// comparison.
func SortByKey[E any, K constraints.Ordered](x []E, key func(E) K) int {
	lt := func(a, b E) bool { return cmpLess(key(a), key(b)) }
	return lessFunc[E](lt).cycleSort(x, nil)
}

// SortLessFunc sorts the slice x in ascending order as determined by less and
// returns the number of writes made.
// less must describe a strict weak ordering.
func SortLessFunc[E any](x []E, less func(a, b E) bool) int {
	return lessFunc[E](less).cycleSort(x, nil)
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[E constraints.Ordered](x []E) bool {
	return lessFunc[E](cmpLess[E]).isSorted(x)
}

// IsSortedFunc reports whether x is sorted in ascending order, with cmp as
// the comparison function as defined by SortFunc.
func IsSortedFunc[E any](x []E, cmp func(a, b E) int) bool {
	lt := func(a, b E) bool { return cmp(a, b) < 0 }
	return lessFunc[E](lt).isSorted(x)
}

// cmpLess is a < b, with NaNs less than any other value.
func cmpLess[E constraints.Ordered](a, b E) bool {
	return (isNaN(a) && !isNaN(b)) || a < b
}

func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}
