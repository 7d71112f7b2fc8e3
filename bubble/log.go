// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bubble

import (
	"os"

	"github.com/aclements/go-bubbleplot/internal/gologger"
	"github.com/rs/zerolog"
)

var logger = gologger.NewLogger(os.Stderr, "bubble")

// SetLogger replaces the logger used by this package. Pass
// zerolog.Nop() to silence it.
func SetLogger(l zerolog.Logger) {
	logger = l
}
