// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default [log/slog] logger for
// luGL programs, with a user-selected verbosity level.
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. The default is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromString parses a level name ("debug", "info", "warn", "error"),
// returning [slog.LevelWarn] and false if it is not recognized.
func LevelFromString(s string) (slog.Level, bool) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, false
	}
	return l, true
}
