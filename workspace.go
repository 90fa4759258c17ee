// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"math"
	"unsafe"
)

// cacheLine is the alignment boundary, in bytes, used for every array
// carved out of a workspace's backing buffer.
const cacheLine = 64

// headerSize reserves one cache line for the workspace's scalar state
// (interval bounds, counts, rotation and offset), mirroring the header
// slot the original C arena placed at the front of its allocation. The Go
// Workspace struct itself is heap-allocated separately; this slot is
// unused padding kept only so MemSize's byte accounting matches the
// documented "header + aligned arrays + alignment slack" contract.
const headerSize = cacheLine

// alignUp rounds n up to the next multiple of cacheLine.
func alignUp(n int) int {
	return (n + cacheLine - 1) &^ (cacheLine - 1)
}

// arenaLayout describes the byte offsets of every array inside a
// workspace's backing buffer for a given capacity.
type arenaLayout struct {
	gx, gy, h           int
	dx, y0              int
	xIntersect          int
	ceilIdx, floorIdx   int
	tmpIdx              int
	total               int
	intersectCap        int
}

func layoutFor(capacity int) arenaLayout {
	var l arenaLayout
	off := alignUp(headerSize)

	next := func(n, elemSize int) int {
		start := off
		off = alignUp(off + n*elemSize)
		return start
	}

	l.gx = next(capacity, 8)
	l.gy = next(capacity, 8)
	l.h = next(capacity, 8)
	l.dx = next(capacity, 8)
	l.y0 = next(capacity, 8)
	l.intersectCap = (capacity + 1) / 2
	l.xIntersect = next(l.intersectCap, 8)
	l.ceilIdx = next(capacity, 4)
	l.floorIdx = next(capacity, 4)
	l.tmpIdx = next(capacity, 4)
	l.total = off
	return l
}

// MemSize returns the number of bytes required to host a workspace with
// the given capacity, including its 64-byte-aligned arrays and alignment
// slack. Use it to size a buffer passed to Init.
func MemSize(capacity int) int {
	if capacity < 0 {
		capacity = 0
	}
	return layoutFor(capacity).total
}

// Workspace holds the arrays and per-problem state a solve needs. It may
// be reused across any number of problems with n <= Capacity(); it is not
// safe for concurrent solves. The zero Workspace is not valid; construct
// one with Init or Create.
type Workspace struct {
	capacity int32
	n        int32

	// Gx, Gy, h hold the conditioned constraints (post rotation,
	// normalization and recentering). dx, y0 hold the slope/intercept
	// form of the non-vertical constraints among them.
	Gx, Gy, h []float64
	dx, y0    []float64

	// xIntersect holds candidate split points recorded during pruning;
	// intersectLen is the number currently valid.
	xIntersect   []float64
	intersectLen int32

	// ceilIdx, floorIdx index into Gx/Gy/h/dx/y0 for the ceiling and
	// floor constraints currently under consideration; ceilLen and
	// floorLen are their valid lengths. tmpIdx is pruning scratch space.
	ceilIdx, floorIdx, tmpIdx []int32
	ceilLen, floorLen         int32

	// x0, x1 bound the feasible interval on the rotated x-axis.
	x0, x1 float64

	// R, o are the conditioning rotation and recentering offset, used to
	// inverse-transform a result back to the caller's frame.
	R mat22
	o vec2
}

// floatSliceAt returns an n-element float64 view into buf starting at
// byte offset off. It returns nil for n == 0 so that an offset sitting at
// the very end of buf never needs to be dereferenced.
func floatSliceAt(buf []byte, off, n int) []float64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&buf[off])), n)
}

// int32SliceAt returns an n-element int32 view into buf starting at byte
// offset off. It returns nil for n == 0.
func int32SliceAt(buf []byte, off, n int) []int32 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&buf[off])), n)
}

// Init constructs a Workspace with the given capacity inplace in buf, which
// must be at least MemSize(capacity) bytes. Use Create instead when the
// host runtime may allocate on the caller's behalf.
func Init(capacity int, buf []byte) (*Workspace, error) {
	if capacity < 0 {
		return nil, ErrCapacity
	}
	l := layoutFor(capacity)
	if len(buf) < l.total {
		return nil, ErrBufferTooSmall
	}

	w := &Workspace{capacity: int32(capacity)}
	w.Gx = floatSliceAt(buf, l.gx, capacity)
	w.Gy = floatSliceAt(buf, l.gy, capacity)
	w.h = floatSliceAt(buf, l.h, capacity)
	w.dx = floatSliceAt(buf, l.dx, capacity)
	w.y0 = floatSliceAt(buf, l.y0, capacity)
	w.xIntersect = floatSliceAt(buf, l.xIntersect, l.intersectCap)
	w.ceilIdx = int32SliceAt(buf, l.ceilIdx, capacity)
	w.floorIdx = int32SliceAt(buf, l.floorIdx, capacity)
	w.tmpIdx = int32SliceAt(buf, l.tmpIdx, capacity)
	w.reset()
	return w, nil
}

// Create allocates a new Workspace able to represent at least capacity
// constraints. The returned workspace should eventually be passed to
// Release.
func Create(capacity int) (*Workspace, error) {
	if capacity < 0 {
		return nil, ErrCapacity
	}
	buf := make([]byte, MemSize(capacity))
	return Init(capacity, buf)
}

// Release drops the workspace's references to its backing arrays so a
// Create-allocated buffer becomes collectible without waiting for the
// caller to drop its last reference to w. Using w after Release is a bug:
// Capacity() reports 0 afterward, which fails every subsequent Solve call
// with n > 0.
func (w *Workspace) Release() {
	if w == nil {
		return
	}
	*w = Workspace{}
}

// Capacity reports the configured capacity of w, or 0 for a nil or
// released workspace.
func (w *Workspace) Capacity() int {
	if w == nil {
		return 0
	}
	return int(w.capacity)
}

// reset clears the per-problem fields so the workspace starts a new solve
// with no leftover state from a previous one; the backing arrays
// themselves are reused rather than reallocated.
func (w *Workspace) reset() {
	w.n = 0
	w.ceilLen = 0
	w.floorLen = 0
	w.intersectLen = 0
	w.x0 = math.Inf(-1)
	w.x1 = math.Inf(1)
	w.R = mat22{}
	w.o = vec2{}
}

// inverseTransform maps a result point (xr, yr) in the conditioned
// (rotated, recentered) frame back to the caller's original frame.
func (w *Workspace) inverseTransform(xr, yr float64) (float64, float64) {
	u := xr + w.o.x
	v := yr + w.o.y
	return w.R.applyTranspose(u, v)
}
