// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// Solve finds the minimum of cx*x + cy*y subject to the n half-plane
// constraints Gx[i]*x + Gy[i]*y >= h[i], using w as scratch storage. It
// returns StatusError if w is nil, n exceeds w.Capacity(), or the
// objective gradient (cx, cy) is zero. Solve never allocates; w may be
// reused for any number of subsequent problems with size <= w.Capacity().
func (w *Workspace) Solve(cx, cy float64, Gx, Gy, h []float64, n int) Result {
	if w == nil || n < 0 || n > int(w.capacity) {
		return Result{Status: StatusError}
	}
	if cx == 0 && cy == 0 {
		return Result{Status: StatusError}
	}

	w.reset()

	if w.condition(cx, cy, Gx, Gy, h, n) {
		return Result{Status: StatusInfeasible}
	}
	if w.categorize() {
		return Result{Status: StatusInfeasible}
	}

	w.computeYOffsets(w.floorIdx[:w.floorLen])
	w.computeYOffsets(w.ceilIdx[:w.ceilLen])

	var mx float64
	var mxKnown, optimumIsLeft bool

	for {
		if w.floorLen == 0 || (w.floorLen <= 1 && w.ceilLen <= 1) {
			return w.endgame()
		}

		w.intersectLen = 0
		w.floorLen = w.prune(w.floorIdx[:w.floorLen], false, mx, mxKnown, optimumIsLeft)
		w.ceilLen = w.prune(w.ceilIdx[:w.ceilLen], true, mx, mxKnown, optimumIsLeft)

		if w.intersectLen == 0 {
			continue
		}

		mx = median(w.xIntersect[:w.intersectLen])
		mxKnown = true

		loc, fe, _ := w.locate(mx)
		switch loc {
		case locHereEdge:
			return w.resolveEdge()
		case locHere:
			rx, ry := w.inverseTransform(mx, fe.y)
			return Result{Status: StatusPoint, X1: rx, Y1: ry}
		case locInfeasible:
			return Result{Status: StatusInfeasible}
		case locLeft:
			w.x1 = mx
			optimumIsLeft = true
		case locRight:
			w.x0 = mx
			optimumIsLeft = false
		}
	}
}

// SolveSimple is a convenience wrapper that creates a workspace sized to
// n, solves, and releases it. Prefer Create plus Solve when solving many
// problems, since Solve never allocates but SolveSimple always does.
func SolveSimple(cx, cy float64, Gx, Gy, h []float64, n int) Result {
	w, err := Create(n)
	if err != nil {
		return Result{Status: StatusError}
	}
	defer w.Release()
	return w.Solve(cx, cy, Gx, Gy, h, n)
}
