// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// intersectX returns the x coordinate where the line through floor
// constraint f (dx[f], y0[f]) meets the line through constraint j.
func (w *Workspace) intersectX(f, j int32) (x float64, ok bool) {
	dxf, y0f := w.dx[f], w.y0[f]
	dxj, y0j := w.dx[j], w.y0[j]
	if nearEqual(dxf, dxj) {
		return 0, false
	}
	return (y0j - y0f) / (dxf - dxj), true
}

// resolveEdge handles the HERE_EDGE case: a horizontal floor dominates
// the optimum and the feasible interval's true bounds must be recovered
// by intersecting it with every other surviving constraint. If the
// tightened interval is still open on either side, the result is
// StatusUnbounded, as in endgame's horizontal-floor case.
func (w *Workspace) resolveEdge() Result {
	floors := w.floorIdx[:w.floorLen]
	f := int32(-1)
	for _, idx := range floors {
		if !nearEqual(w.dx[idx], 0) {
			continue
		}
		if f == -1 || w.y0[idx] > w.y0[f] {
			f = idx
		}
	}

	tighten := func(j int32, isCeilSet bool) {
		x, ok := w.intersectX(f, j)
		if !ok {
			return
		}
		dxj := w.dx[j]
		switch {
		case (isCeilSet && dxj > 0) || (!isCeilSet && dxj < 0):
			w.x0 = max(w.x0, x)
		case (isCeilSet && dxj < 0) || (!isCeilSet && dxj > 0):
			w.x1 = min(w.x1, x)
		}
	}

	for _, idx := range floors {
		if idx == f {
			continue
		}
		tighten(idx, false)
	}
	for _, idx := range w.ceilIdx[:w.ceilLen] {
		tighten(idx, true)
	}

	if math.IsInf(w.x0, -1) || math.IsInf(w.x1, 1) {
		return Result{Status: StatusUnbounded}
	}
	y := w.y0[f]
	if nearEqual(w.x0, w.x1) {
		rx, ry := w.inverseTransform(w.x0, y)
		return Result{Status: StatusPoint, X1: rx, Y1: ry}
	}
	rx0, ry0 := w.inverseTransform(w.x0, y)
	rx1, ry1 := w.inverseTransform(w.x1, y)
	return Result{Status: StatusEdge, X1: rx0, Y1: ry0, X2: rx1, Y2: ry1}
}
