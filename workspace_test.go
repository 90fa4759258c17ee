// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "testing"

func TestMemSizeMonotonicAndAligned(t *testing.T) {
	prev := MemSize(0)
	for _, c := range []int{0, 1, 5, 64, 65, 128, 1000} {
		size := MemSize(c)
		if size < prev {
			t.Errorf("MemSize(%d) = %d < MemSize(prev) = %d, want monotone non-decreasing", c, size, prev)
		}
		if size%cacheLine != 0 {
			t.Errorf("MemSize(%d) = %d, not a multiple of %d", c, size, cacheLine)
		}
		prev = size
	}
}

func TestInitRejectsSmallBuffer(t *testing.T) {
	buf := make([]byte, MemSize(16)-1)
	if _, err := Init(16, buf); err != ErrBufferTooSmall {
		t.Errorf("Init with undersized buffer: err = %v, want ErrBufferTooSmall", err)
	}
}

func TestInitRejectsNegativeCapacity(t *testing.T) {
	if _, err := Init(-1, nil); err != ErrCapacity {
		t.Errorf("Init(-1, nil): err = %v, want ErrCapacity", err)
	}
	if _, err := Create(-1); err != ErrCapacity {
		t.Errorf("Create(-1): err = %v, want ErrCapacity", err)
	}
}

func TestInitExactSizedBuffer(t *testing.T) {
	buf := make([]byte, MemSize(32))
	w, err := Init(32, buf)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if w.Capacity() != 32 {
		t.Errorf("Capacity() = %d, want 32", w.Capacity())
	}
}

func TestCapacityAndRelease(t *testing.T) {
	w, err := Create(8)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := w.Capacity(); got != 8 {
		t.Errorf("Capacity() = %d, want 8", got)
	}

	w.Release()
	if got := w.Capacity(); got != 0 {
		t.Errorf("Capacity() after Release = %d, want 0", got)
	}

	got := w.Solve(0, 1, []float64{0}, []float64{1}, []float64{0}, 1)
	if got.Status != StatusError {
		t.Errorf("Solve on released workspace: Status = %v, want StatusError", got.Status)
	}
}

func TestNilWorkspace(t *testing.T) {
	var w *Workspace
	if got := w.Capacity(); got != 0 {
		t.Errorf("nil.Capacity() = %d, want 0", got)
	}
	if got := w.Solve(0, 1, nil, nil, nil, 0); got.Status != StatusError {
		t.Errorf("nil.Solve(...): Status = %v, want StatusError", got.Status)
	}
	w.Release() // must not panic
}

func TestWorkspaceReuseAcrossSolves(t *testing.T) {
	w, err := Create(4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer w.Release()

	r1 := w.Solve(0, 1, []float64{1, -1}, []float64{1, 1}, []float64{0, 0}, 2)
	if r1.Status != StatusPoint || !nearEqualTol(r1.X1, 0) || !nearEqualTol(r1.Y1, 0) {
		t.Fatalf("first solve = %+v, want POINT(0,0)", r1)
	}

	r2 := w.Solve(0, 1, []float64{1, -1}, []float64{1, 1}, []float64{3, 1}, 2)
	if r2.Status != StatusPoint || !nearEqualTol(r2.X1, 1) || !nearEqualTol(r2.Y1, 2) {
		t.Fatalf("second solve on reused workspace = %+v, want POINT(1,2)", r2)
	}
}
