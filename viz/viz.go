// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz renders a two-dimensional linear program and its solution
// for visual inspection. It is a debugging aid, not part of the solve
// path: it allocates freely and depends on gonum.org/v1/plot.
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gonum.org/v1/linprog2d"
)

// Bounds sets the drawing scale: each constraint boundary is drawn as a
// segment of length 4*Extent, and the objective arrow is Extent/4 long.
// Segments are not clipped to [-Extent, Extent] x [-Extent, Extent], and
// the plot's axes are scaled to the drawn data rather than to Extent.
type Bounds struct {
	Extent float64
}

// DefaultBounds returns a scale large enough to show most small textbook
// problems.
func DefaultBounds() Bounds {
	return Bounds{Extent: 20}
}

// Plot renders the half-plane constraints Gx[i]*x + Gy[i]*y >= h[i], the
// objective direction (cx, cy), and result onto a new plot sized width by
// height physical units, writing it to path in the format implied by path's
// extension (png, svg, pdf, ...).
func Plot(cx, cy float64, Gx, Gy, h []float64, result linprog2d.Result, bounds Bounds, width, height vg.Length, path string) error {
	if len(Gx) != len(Gy) || len(Gx) != len(h) {
		return fmt.Errorf("viz: Gx, Gy, h must have equal length, got %d, %d, %d", len(Gx), len(Gy), len(h))
	}

	p := plot.New()
	p.Title.Text = "2D linear program"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	e := bounds.Extent
	for i := range Gx {
		line, err := constraintLine(Gx[i], Gy[i], h[i], e)
		if err != nil {
			continue // degenerate (zero-direction) constraint: nothing to draw.
		}
		line.Color = color.RGBA{B: 0xff, A: 0x80}
		p.Add(line)
	}

	if objLine, err := objectiveArrow(cx, cy, e); err == nil {
		objLine.Color = color.RGBA{R: 0xff, A: 0xff}
		objLine.Width = vg.Points(1.5)
		p.Add(objLine)
		p.Legend.Add("objective", objLine)
	}

	if err := addResult(p, result); err != nil {
		return err
	}

	return p.Save(width, height, path)
}

// constraintLine returns a segment of the boundary line Gx*x + Gy*y = h of
// length 4e, centred on the line's point nearest the origin; it is not
// clipped to [-e, e] x [-e, e]. It uses a normal-form parametrization so that near-vertical and near-horizontal lines are
// both handled without dividing by a near-zero slope.
func constraintLine(gx, gy, h, e float64) (*plotter.Line, error) {
	// Rotate (gx, gy) to find a point on the line and a direction along
	// it: the normal is (gx, gy)/|(gx,gy)|, the tangent is its
	// perpendicular. This mirrors the solver's own rotation-based
	// conditioning rather than branching on slope by hand.
	n := mat.NewVecDense(2, []float64{gx, gy})
	norm := mat.Norm(n, 2)
	if norm == 0 {
		return nil, fmt.Errorf("viz: degenerate constraint (0, 0) >= %v", h)
	}
	nx, ny := gx/norm, gy/norm
	tx, ty := -ny, nx

	p0x, p0y := nx*h/norm, ny*h/norm
	a := plotter.XYs{
		{X: p0x - tx*2*e, Y: p0y - ty*2*e},
		{X: p0x + tx*2*e, Y: p0y + ty*2*e},
	}
	return plotter.NewLine(a)
}

// objectiveArrow draws a short segment through the origin in the
// direction of steepest descent, -( cx, cy ), scaled to a fixed length so
// it stays visible regardless of the objective's magnitude.
func objectiveArrow(cx, cy, e float64) (*plotter.Line, error) {
	c := mat.NewVecDense(2, []float64{cx, cy})
	norm := mat.Norm(c, 2)
	if norm == 0 {
		return nil, fmt.Errorf("viz: zero objective gradient")
	}
	dx, dy := -cx/norm, -cy/norm
	length := e / 4
	return plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: dx * length, Y: dy * length},
	})
}

// addResult draws result onto p: a single marker for StatusPoint, a
// thick segment for StatusEdge, and the status name appended to the plot
// title for any other status.
func addResult(p *plot.Plot, result linprog2d.Result) error {
	switch result.Status {
	case linprog2d.StatusPoint:
		pts, err := plotter.NewScatter(plotter.XYs{{X: result.X1, Y: result.Y1}})
		if err != nil {
			return err
		}
		pts.Color = color.RGBA{G: 0xa0, A: 0xff}
		pts.Shape = draw.CircleGlyph{}
		pts.Radius = vg.Points(4)
		p.Add(pts)
		p.Legend.Add("optimum", pts)
	case linprog2d.StatusEdge:
		line, err := plotter.NewLine(plotter.XYs{
			{X: result.X1, Y: result.Y1},
			{X: result.X2, Y: result.Y2},
		})
		if err != nil {
			return err
		}
		line.Color = color.RGBA{G: 0xa0, A: 0xff}
		line.Width = vg.Points(3)
		p.Add(line)
		p.Legend.Add("optimal edge", line)
	default:
		p.Title.Text += fmt.Sprintf(" (%s)", result.Status)
	}
	return nil
}
