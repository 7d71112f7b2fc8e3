// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gologger constructs the zerolog loggers used by the
// bubble plot packages.
package gologger

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		function := ""
		if fun := runtime.FuncForPC(pc); fun != nil {
			name := fun.Name()
			if slash := strings.LastIndex(name, "/"); slash > 0 {
				name = name[slash+1:]
			}
			function = " " + name + "()"
		}
		return file + ":" + strconv.Itoa(line) + function
	}
}

// NewLogger returns a JSON logger writing to w, tagged with the given
// component name.
//
// If the PRETTY environment variable is "1", output is written in
// human-readable console form to stderr instead. If DEBUG is "1", the
// logger emits debug-level events; otherwise it starts at info.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	if os.Getenv("PRETTY") == "1" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger().
		Hook(CallerHook{})
}

// CallerHook annotates warnings and errors with the caller's
// location. Debug and info events are left bare to keep them cheap.
type CallerHook struct{}

func (h CallerHook) Run(e *zerolog.Event, level zerolog.Level, _ string) {
	if level >= zerolog.WarnLevel {
		e.Caller(3)
	}
}
