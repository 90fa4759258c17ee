// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// endgame handles the terminal case where pruning can no longer make
// progress: at most one floor and one ceiling constraint remain (or no
// floor at all). It consumes and finalizes w.x0/w.x1.
func (w *Workspace) endgame() Result {
	if w.floorLen == 0 {
		return Result{Status: StatusUnbounded}
	}

	f := w.floorIdx[0]
	if w.ceilLen > 0 {
		c := w.ceilIdx[0]
		if nearEqual(w.dx[f], w.dx[c]) {
			if w.y0[f] > w.y0[c] && !nearEqual(w.y0[f], w.y0[c]) {
				return Result{Status: StatusInfeasible}
			}
			// parallel, floor at or below ceil: the ceil is redundant.
		} else {
			x, _ := w.intersectX(f, c)
			if w.dx[f] > w.dx[c] {
				w.x1 = min(w.x1, x)
			} else {
				w.x0 = max(w.x0, x)
			}
		}
	}

	if w.x0 > w.x1 && !nearEqual(w.x0, w.x1) {
		return Result{Status: StatusInfeasible}
	}

	dxf, y0f := w.dx[f], w.y0[f]

	switch {
	case nearEqual(dxf, 0):
		if math.IsInf(w.x0, -1) || math.IsInf(w.x1, 1) {
			return Result{Status: StatusUnbounded}
		}
		rx0, ry0 := w.inverseTransform(w.x0, y0f)
		rx1, ry1 := w.inverseTransform(w.x1, y0f)
		return Result{Status: StatusEdge, X1: rx0, Y1: ry0, X2: rx1, Y2: ry1}

	case dxf > 0:
		if math.IsInf(w.x0, -1) {
			return Result{Status: StatusUnbounded}
		}
		ry0 := y0f + w.x0*dxf
		rx, ry := w.inverseTransform(w.x0, ry0)
		return Result{Status: StatusPoint, X1: rx, Y1: ry}

	default:
		if math.IsInf(w.x1, 1) {
			return Result{Status: StatusUnbounded}
		}
		ry1 := y0f + w.x1*dxf
		rx, ry := w.inverseTransform(w.x1, ry1)
		return Result{Status: StatusPoint, X1: rx, Y1: ry}
	}
}
