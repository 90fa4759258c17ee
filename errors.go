// Copyright ©2026 The linprog2d Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "errors"

// ErrCapacity signifies that a negative capacity was requested for a
// workspace.
var ErrCapacity = errors.New("linprog2d: capacity must be non-negative")

// ErrBufferTooSmall signifies that the buffer passed to Init is smaller
// than MemSize(capacity) requires.
var ErrBufferTooSmall = errors.New("linprog2d: buffer smaller than MemSize(capacity)")
