// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// extremum summarizes the constraints of one list (floor or ceiling) at a
// candidate x: the extreme y value attained, and the min/max slope among
// the constraints tied at that extreme (within near_equal).
type extremum struct {
	y            float64
	minDx, maxDx float64
	valid        bool
}

// floorExtremum scans list for the largest y = y0+dx*x (the floor
// envelope's upper boundary at x), returning the tied slopes' range.
func (w *Workspace) floorExtremum(list []int32, x float64) extremum {
	var e extremum
	for _, idx := range list {
		j := int(idx)
		y := w.y0[j] + w.dx[j]*x
		switch {
		case !e.valid || y > e.y && !nearEqual(y, e.y):
			e = extremum{y: y, minDx: w.dx[j], maxDx: w.dx[j], valid: true}
		case nearEqual(y, e.y):
			e.minDx = math.Min(e.minDx, w.dx[j])
			e.maxDx = math.Max(e.maxDx, w.dx[j])
		}
	}
	return e
}

// ceilExtremum scans list for the smallest y = y0+dx*x (the ceiling
// envelope's lower boundary at x), returning the tied slopes' range.
func (w *Workspace) ceilExtremum(list []int32, x float64) extremum {
	var e extremum
	for _, idx := range list {
		j := int(idx)
		y := w.y0[j] + w.dx[j]*x
		switch {
		case !e.valid || y < e.y && !nearEqual(y, e.y):
			e = extremum{y: y, minDx: w.dx[j], maxDx: w.dx[j], valid: true}
		case nearEqual(y, e.y):
			e.minDx = math.Min(e.minDx, w.dx[j])
			e.maxDx = math.Max(e.maxDx, w.dx[j])
		}
	}
	return e
}

// location classifies where the optimum lies relative to a candidate x.
type location int

const (
	locLeft location = iota
	locRight
	locHere
	locHereEdge
	locInfeasible
)

// locate evaluates the floor and ceiling envelopes at x and classifies
// the optimum's position relative to x, per §4.7.
func (w *Workspace) locate(x float64) (location, extremum, extremum) {
	fe := w.floorExtremum(w.floorIdx[:w.floorLen], x)
	var ce extremum
	if w.ceilLen > 0 {
		ce = w.ceilExtremum(w.ceilIdx[:w.ceilLen], x)
	}

	if ce.valid && ce.y < fe.y && !nearEqual(ce.y, fe.y) {
		switch {
		case fe.minDx > ce.maxDx:
			return locLeft, fe, ce
		case fe.maxDx < ce.minDx:
			return locRight, fe, ce
		default:
			return locInfeasible, fe, ce
		}
	}

	switch {
	case nearEqual(fe.minDx, 0) && fe.maxDx > 0 && !nearEqual(fe.maxDx, 0):
		return locLeft, fe, ce
	case nearEqual(fe.maxDx, 0) && fe.minDx < 0 && !nearEqual(fe.minDx, 0):
		return locRight, fe, ce
	case nearEqual(fe.minDx, 0) && nearEqual(fe.maxDx, 0):
		return locHereEdge, fe, ce
	case fe.minDx < 0 && fe.maxDx > 0:
		return locHere, fe, ce
	case fe.minDx > 0:
		return locLeft, fe, ce
	default:
		return locRight, fe, ce
	}
}
