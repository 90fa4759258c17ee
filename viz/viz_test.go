// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"gonum.org/v1/linprog2d"
)

func TestPlotPoint(t *testing.T) {
	cx, cy := 0.0, 1.0
	Gx := []float64{1, -1}
	Gy := []float64{1, 1}
	h := []float64{0, 0}

	result := linprog2d.SolveSimple(cx, cy, Gx, Gy, h, 2)
	if result.Status != linprog2d.StatusPoint {
		t.Fatalf("SolveSimple status = %v, want StatusPoint", result.Status)
	}

	out := filepath.Join(t.TempDir(), "vee.svg")
	err := Plot(cx, cy, Gx, Gy, h, result, DefaultBounds(), 10*vg.Centimeter, 10*vg.Centimeter, out)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
}

func TestPlotRejectsMismatchedLengths(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.svg")
	err := Plot(0, 1, []float64{1, 2}, []float64{1}, []float64{0}, linprog2d.Result{}, DefaultBounds(), 10*vg.Centimeter, 10*vg.Centimeter, out)
	if err == nil {
		t.Error("Plot with mismatched Gx/Gy/h lengths did not return an error")
	}
}
