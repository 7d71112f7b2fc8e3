// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import "errors"

var (
	// ErrConfig reports an unusable option or input configuration,
	// such as a non-positive bin count or a constant numeric column
	// that cannot be split into several bins.
	ErrConfig = errors.New("bubble: invalid configuration")

	// ErrShape reports inputs that do not line up: a missing
	// column, columns of different lengths, or no complete
	// observations at all.
	ErrShape = errors.New("bubble: shape mismatch")

	// ErrUnknownCategory reports a value that does not appear in
	// an explicit category order.
	ErrUnknownCategory = errors.New("bubble: value not in category order")
)
