// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// Status describes how a Result's coordinates should be interpreted.
type Status int

const (
	// StatusError indicates a usage/preflight failure: a nil workspace, a
	// negative problem size or one larger than the workspace's capacity,
	// or a zero objective gradient. Both coordinate pairs are zero.
	StatusError Status = iota

	// StatusInfeasible indicates the constraints admit no point. Both
	// coordinate pairs are zero.
	StatusInfeasible

	// StatusUnbounded indicates the objective has no finite minimum over
	// the feasible set, or that its minimum is attained along a boundary
	// that is open on at least one side (for example, minimizing y
	// subject to y >= 1 alone). Both coordinate pairs are zero.
	StatusUnbounded

	// StatusEdge indicates the optimum is attained along the entire
	// segment from (X1, Y1) to (X2, Y2).
	StatusEdge

	// StatusPoint indicates a unique optimum at (X1, Y1). (X2, Y2) is
	// zero and not meaningful.
	StatusPoint
)

// String returns a human-readable name for s.
func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusEdge:
		return "edge"
	case StatusPoint:
		return "point"
	default:
		return "invalid"
	}
}

// Result is the outcome of solving a two-dimensional linear program. It is
// a tagged union: Status determines which of X1, Y1, X2, Y2 are meaningful,
// per the documentation of each Status constant.
type Result struct {
	Status Status
	X1, Y1 float64
	X2, Y2 float64
}
