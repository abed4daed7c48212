// Copyright 2024 The Flashcore Authors
// This file is part of Flashcore.
//
// Flashcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Flashcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Flashcore. If not, see <http://www.gnu.org/licenses/>.

// Package log defines the LogBackend capability AVM1's `trace()` and the
// VM's own diagnostic logging (panic recovery, budget warnings) write
// through, plus two implementations: Null (test harness default) and
// Console (an interactive player's colorized stderr logger).
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Backend is the logging capability this module depends on.
type Backend interface {
	// Avm logs a `trace()` call or other script-level informational
	// message.
	Avm(msg string)
	// Warn logs a recoverable anomaly (a coercion fallback, a missing
	// host capability).
	Warn(msg string)
	// Error logs a VM-internal fault (a recovered panic, a budget
	// violation).
	Error(msg string)
}

// Null discards every message, grounded on test_utils.rs's
// NullLogBackend::new() used throughout its test harness.
type Null struct{}

func (Null) Avm(string)   {}
func (Null) Warn(string)  {}
func (Null) Error(string) {}

var _ Backend = Null{}

// Console writes to stderr with severity-colored prefixes, the shape an
// interactive player build would want; no component in the teacher's own
// tree used fatih/color, but it's a real pack dependency and a console
// player log is its natural home.
type Console struct {
	warn  *color.Color
	error *color.Color
	info  *color.Color
}

// NewConsole builds a Console logger with the standard severity palette.
func NewConsole() *Console {
	return &Console{
		info:  color.New(color.FgCyan),
		warn:  color.New(color.FgYellow),
		error: color.New(color.FgRed, color.Bold),
	}
}

func (c *Console) Avm(msg string) {
	c.info.Fprintf(os.Stderr, "[avm] %s\n", msg)
}

func (c *Console) Warn(msg string) {
	c.warn.Fprintf(os.Stderr, "[warn] %s\n", msg)
}

func (c *Console) Error(msg string) {
	c.error.Fprintf(os.Stderr, "[error] %s\n", msg)
}

var _ Backend = (*Console)(nil)

// Fields renders a short key=value suffix for structured log lines; a
// trailing key without a value is dropped.
func Fields(kv ...string) string {
	s := ""
	for i := 0; i+1 < len(kv); i += 2 {
		s += fmt.Sprintf(" %s=%s", kv[i], kv[i+1])
	}
	return s
}
