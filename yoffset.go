// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// computeYOffsets converts every constraint indexed by list into
// slope/intercept form: dx[j] = -Gx[j]/Gy[j], y0[j] = h[j]/Gy[j]. The
// half-plane Gx*x + Gy*y >= h is then equivalent to y >= y0 + dx*x for a
// floor (Gy>0) and y <= y0 + dx*x for a ceiling (Gy<0).
func (w *Workspace) computeYOffsets(list []int32) {
	for _, idx := range list {
		j := int(idx)
		w.dx[j] = -w.Gx[j] / w.Gy[j]
		w.y0[j] = w.h[j] / w.Gy[j]
	}
}
