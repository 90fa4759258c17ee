// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"math"
	"testing"
)

func TestNearEqual(t *testing.T) {
	for _, test := range []struct {
		name string
		a, b float64
		want bool
	}{
		{"reflexive zero", 0, 0, true},
		{"reflexive nonzero", 3.5, 3.5, true},
		{"abs tol", 0, 1e-31, true},
		{"rel tol at 1", 1, 1 + 1e-15, true},
		{"just outside rel tol", 1e-15, 1e-15 + 1.01e-15, false},
		{"far apart", 1, 2, false},
	} {
		if got := nearEqual(test.a, test.b); got != test.want {
			t.Errorf("%s: nearEqual(%v, %v) = %v, want %v", test.name, test.a, test.b, got, test.want)
		}
		if got := nearEqual(test.b, test.a); got != test.want {
			t.Errorf("%s: nearEqual is not symmetric: nearEqual(%v, %v) = %v, want %v", test.name, test.b, test.a, got, test.want)
		}
	}
}

func TestRot(t *testing.T) {
	for _, test := range []struct {
		x, y float64
	}{
		{1, 0},
		{0, 1},
		{-1, 0},
		{0, -1},
		{3, 4},
		{-40, -60},
	} {
		r := rot(test.x, test.y)
		gx, gy := r.apply(test.x, test.y)
		h := math.Hypot(test.x, test.y)
		// gx is zero only up to rounding relative to h (4.4e-16 for
		// (3, 4)), so it is compared with the relative tolerance scaled
		// by h rather than with nearEqual's absolute one.
		if math.Abs(gx) > maxEpsRel*h || !nearEqual(gy, h) {
			t.Errorf("rot(%v, %v) applied to itself = (%v, %v), want (0, %v)", test.x, test.y, gx, gy, h)
		}

		// R must be a proper rotation: det = 1 and orthogonal.
		det := r.a11*r.a22 - r.a12*r.a21
		if !nearEqual(det, 1) {
			t.Errorf("rot(%v, %v) has det %v, want 1", test.x, test.y, det)
		}

		// applyTranspose must invert apply.
		ux, uy := r.applyTranspose(gx, gy)
		if !nearEqual(ux, test.x) || !nearEqual(uy, test.y) {
			t.Errorf("rot(%v, %v): applyTranspose(apply(x,y)) = (%v, %v), want (%v, %v)", test.x, test.y, ux, uy, test.x, test.y)
		}
	}
}

func TestRotPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("rot(0, 0) did not panic")
		}
	}()
	rot(0, 0)
}
