// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// cswap compares d[i] and d[j] and swaps them so that d[i] <= d[j].
func cswap(d []float64, i, j int) {
	if d[j] < d[i] {
		d[i], d[j] = d[j], d[i]
	}
}

// sortSmall sorts d in place using a fixed comparator network. len(d) must
// be at most 5.
func sortSmall(d []float64) {
	switch len(d) {
	case 0, 1:
	case 2:
		cswap(d, 0, 1)
	case 3:
		cswap(d, 0, 1)
		cswap(d, 0, 2)
		cswap(d, 1, 2)
	case 4:
		cswap(d, 0, 1)
		cswap(d, 2, 3)
		cswap(d, 0, 2)
		cswap(d, 1, 3)
		cswap(d, 1, 2)
	case 5:
		cswap(d, 0, 1)
		cswap(d, 3, 4)
		cswap(d, 2, 4)
		cswap(d, 2, 3)
		cswap(d, 0, 3)
		cswap(d, 0, 2)
		cswap(d, 1, 4)
		cswap(d, 1, 3)
		cswap(d, 1, 2)
	default:
		panic("linprog2d: sortSmall called with len(d) > 5")
	}
}

// partition3 performs a three-way (Dutch national flag) partition of d
// around pivot, in place. On return d[:lt] < pivot, d[lt:gt] == pivot and
// d[gt:] > pivot; lt is the count of elements strictly less than pivot.
func partition3(d []float64, pivot float64) (lt, gt int) {
	i, lo, hi := 0, 0, len(d)-1
	for i <= hi {
		switch {
		case d[i] < pivot:
			d[lo], d[i] = d[i], d[lo]
			lo++
			i++
		case d[i] > pivot:
			d[hi], d[i] = d[i], d[hi]
			hi--
		default:
			i++
		}
	}
	return lo, hi + 1
}

// medianOfMedians partitions d into groups of 5 (the trailing remainder
// group, of fewer than 5 elements, is included rather than discarded),
// moves each group's median to the front of d, and returns the median of
// those group medians as a pivot candidate. It mutates d.
func medianOfMedians(d []float64) float64 {
	numGroups := (len(d) + 4) / 5
	for i := 0; i < numGroups; i++ {
		lo := i * 5
		hi := lo + 5
		if hi > len(d) {
			hi = len(d)
		}
		group := d[lo:hi]
		sortSmall(group)
		mid := lo + (hi-lo)/2
		d[i], d[mid] = d[mid], d[i]
	}
	return kthSmallest(d[:numGroups], numGroups/2)
}

// kthSmallest returns the element of rank k (0-indexed, ascending) that d
// would hold were it sorted. It mutates d in place (reordering, not just
// reading it) and runs in expected O(len(d)) time using median-of-medians
// selection.
func kthSmallest(d []float64, k int) float64 {
	for {
		if len(d) <= 5 {
			sortSmall(d)
			return d[k]
		}
		pivot := medianOfMedians(d)
		lt, gt := partition3(d, pivot)
		switch {
		case k < lt:
			d = d[:lt]
		case k < gt:
			return pivot
		default:
			k -= gt
			d = d[gt:]
		}
	}
}

// median returns the element at rank floor(len(d)/2) were d sorted
// ascending — the middle element for odd length, the upper median for
// even length. It mutates d in place.
func median(d []float64) float64 {
	return kthSmallest(d, len(d)/2)
}
