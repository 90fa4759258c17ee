// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// intersect returns the intersection (xI, yI) of the two lines
// Gx_a*x + Gy_a*y = h_a and Gx_b*x + Gy_b*y = h_b. parallel reports that
// the determinant D of their coefficient matrix is near-equal to 0; the
// lines are then parallel and (xI, yI) is zero and meaningless.
func (w *Workspace) intersect(a, b int32) (xI, yI float64, parallel bool) {
	gxa, gya, ha := w.Gx[a], w.Gy[a], w.h[a]
	gxb, gyb, hb := w.Gx[b], w.Gy[b], w.h[b]

	d := gxa*gyb - gxb*gya
	if nearEqual(d, 0) {
		return 0, 0, true
	}
	xI = (ha*gyb - hb*gya) / d
	yI = (hb*gxa - ha*gxb) / d
	return xI, yI, false
}

// prune pairs consecutive entries of list, eliminating one constraint per
// pair whenever its intersection provably lies outside the side of the
// interval the optimum can occupy, and otherwise retaining both and
// recording the intersection's x coordinate as a candidate median input.
// It mutates list in place and returns its new length.
//
// mxKnown indicates a prior median mx is available (from a previous
// locate() call at this same x0/x1) to resolve ties at the interval
// boundary; optimumIsLeft indicates which side of mx the optimum was
// determined to lie on at that time.
func (w *Workspace) prune(list []int32, isCeil bool, mx float64, mxKnown, optimumIsLeft bool) int32 {
	m := len(list)
	tmp := w.tmpIdx[:m]
	front, back := 0, m-1

	keepLone := func(idx int32) {
		tmp[back] = idx
		back--
	}
	keepPair := func(a, b int32) {
		tmp[front] = a
		tmp[front+1] = b
		front += 2
	}
	recordIntersection := func(xI float64) {
		w.xIntersect[w.intersectLen] = xI
		w.intersectLen++
	}
	// dir = (optimum_is_left ? +1 : -1) x (is_ceil ? +1 : -1), per the
	// pairing/pruning rule. The left branch fixes optimum_is_left=false,
	// the right branch fixes optimum_is_left=true (the case is symmetric
	// to the left one, per spec).
	isCeilFactor := float64(-1)
	if isCeil {
		isCeilFactor = 1
	}

	pairs := m / 2
	for i := 0; i < pairs; i++ {
		a, b := list[2*i], list[2*i+1]
		xI, _, parallel := w.intersect(a, b)

		if parallel {
			if w.h[a] >= w.h[b] {
				keepLone(a)
			} else {
				keepLone(b)
			}
			continue
		}

		left := xI < w.x0 || (mxKnown && nearEqual(xI, mx) && !optimumIsLeft)
		right := xI > w.x1 || (mxKnown && nearEqual(xI, mx) && optimumIsLeft)

		switch {
		case left:
			dir := -1 * isCeilFactor
			if dir*w.dx[a] >= dir*w.dx[b] {
				keepLone(a)
			} else {
				keepLone(b)
			}
		case right:
			dir := isCeilFactor
			if dir*w.dx[a] >= dir*w.dx[b] {
				keepLone(a)
			} else {
				keepLone(b)
			}
		default:
			keepPair(a, b)
			recordIntersection(xI)
		}
	}

	if m%2 == 1 {
		keepLone(list[m-1])
	}

	copy(list[:front], tmp[:front])
	copy(list[front:], tmp[back+1:m])
	return int32(front + (m - 1 - back))
}
