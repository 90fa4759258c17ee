// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances for the near-equal predicate, per the solver's floating-point
// equality contract: two doubles are near-equal iff their absolute
// difference is below maxEpsAbs, or below maxEpsRel times the larger of
// their magnitudes. This is the sole tolerance used throughout the solver —
// in slope-zero detection, parallel-line detection, median-tie detection,
// and result-coordinate equality.
const (
	maxEpsAbs = 1e-30
	maxEpsRel = 1e-15
)

// nearEqual reports whether a and b are indistinguishable at the solver's
// working precision.
func nearEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, maxEpsAbs, maxEpsRel)
}

// vec2 is a vector in 2D space.
type vec2 struct {
	x, y float64
}

// mat22 is a 2x2 matrix, a[i,j] where i is the row and j the column.
type mat22 struct {
	a11, a12, a21, a22 float64
}

// rot returns the rotation matrix that maps (x, y) onto (0, hypot(x, y)):
// it aligns a direction with +y. Applied to an objective gradient (cx,
// cy), this turns "minimize cx*x + cy*y" into "minimize y'" in the
// rotated frame, since c.p = (R c).(R p) = |c|*y' under a proper
// rotation R.
//
// rot panics if (x, y) is the zero vector, since no rotation can align a
// direction that doesn't exist; callers are expected to have rejected a
// zero objective gradient before reaching here.
func rot(x, y float64) mat22 {
	h := math.Hypot(x, y)
	if h == 0 {
		panic("linprog2d: rot called with zero vector")
	}
	return mat22{
		a11: y / h, a12: -x / h,
		a21: x / h, a22: y / h,
	}
}

// apply returns R * (x, y)^T.
func (r mat22) apply(x, y float64) (float64, float64) {
	return r.a11*x + r.a12*y, r.a21*x + r.a22*y
}

// applyTranspose returns R^T * (x, y)^T, i.e. R's inverse since R is a
// rotation.
func (r mat22) applyTranspose(x, y float64) (float64, float64) {
	return r.a11*x + r.a21*y, r.a12*x + r.a22*y
}
