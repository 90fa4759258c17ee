// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linprog2d solves two-dimensional linear programs
//
//	minimize   cx*x + cy*y
//	subject to Gx[i]*x + Gy[i]*y >= h[i], for i = 0 .. n-1
//
// in expected linear time using Megiddo/Dyer-style prune-and-search: the
// problem is conditioned (rotated so the objective aligns with +y,
// normalized, and recentered by least squares), its constraints are split
// into ceiling, floor and vertical sets, and a median-of-medians selection
// repeatedly prunes a constant fraction of the surviving constraints while
// narrowing a feasible interval on the rotated x-axis.
//
// All inequalities are treated as non-strict; this package does not model
// open half-planes. A [Workspace] holds the arrays the solver needs and can
// be reused across any number of problems up to its configured capacity;
// [Workspace.Solve] never allocates once the workspace exists. Callers that
// want a single one-shot solve without managing a workspace's lifetime can
// use [SolveSimple] instead.
package linprog2d
