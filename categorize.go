// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// categorize splits the n conditioned constraints into w.ceilIdx (Gy < 0)
// and w.floorIdx (Gy > 0), tightening w.x0/w.x1 directly from vertical
// constraints (Gy ≈ 0). It reports infeasible iff w.x0 > w.x1 afterward.
func (w *Workspace) categorize() (infeasible bool) {
	w.ceilLen = 0
	w.floorLen = 0

	n := int(w.n)
	for i := 0; i < n; i++ {
		gx, gy, h := w.Gx[i], w.Gy[i], w.h[i]

		if nearEqual(gy, 0) {
			x := h / gx
			if gx > 0 {
				w.x0 = max(w.x0, x)
			} else {
				w.x1 = min(w.x1, x)
			}
			continue
		}

		if gy > 0 {
			w.floorIdx[w.floorLen] = int32(i)
			w.floorLen++
		} else {
			w.ceilIdx[w.ceilLen] = int32(i)
			w.ceilLen++
		}
	}

	return w.x0 > w.x1
}
