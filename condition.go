// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// condition rotates the objective to align with +y, normalizes every
// constraint so that max(|Gx|,|Gy|) = 1, and recenters the problem via a
// closed-form least-squares offset. It writes the conditioned constraints
// into w.Gx, w.Gy, w.h and sets w.n to the number that survive (trivially
// satisfied constraints are dropped). It reports infeasible if a
// zero-direction constraint demands 0 >= h with h > 0.
func (w *Workspace) condition(cx, cy float64, srcGx, srcGy, srcH []float64, n int) (infeasible bool) {
	w.R = rot(cx, cy)

	var gtg mat22
	var gth vec2

	tar := 0
	for i := 0; i < n; i++ {
		gx, gy := w.R.apply(srcGx[i], srcGy[i])
		h := srcH[i]

		if nearEqual(gx, 0) && nearEqual(gy, 0) {
			if h <= 0 {
				continue
			}
			return true
		}

		norm := math.Max(math.Abs(gx), math.Abs(gy))
		gx /= norm
		gy /= norm
		h /= norm

		w.Gx[tar] = gx
		w.Gy[tar] = gy
		w.h[tar] = h
		tar++

		gtg.a11 += gx * gx
		gtg.a12 += gx * gy
		gtg.a21 += gx * gy
		gtg.a22 += gy * gy
		gth.x += gx * h
		gth.y += gy * h
	}
	w.n = int32(tar)

	det := gtg.a11*gtg.a22 - gtg.a12*gtg.a21
	if det != 0 {
		w.o = vec2{
			x: (gtg.a22*gth.x - gtg.a12*gth.y) / det,
			y: (gtg.a11*gth.y - gtg.a21*gth.x) / det,
		}
	} else {
		w.o = vec2{}
	}

	for i := 0; i < tar; i++ {
		w.h[i] -= w.o.x*w.Gx[i] + w.o.y*w.Gy[i]
	}
	return false
}
