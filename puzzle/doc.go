// SPDX-License-Identifier: MIT

// Package puzzle wires the daily solvers behind a small registry used by
// cmd/submarine.
//
// What:
//
//   - Register/Lookup/All: day number → Puzzle{Day, Name, Solve}.
//   - Config: input location and per-day knobs, loaded from an INI file
//     (see LoadConfig) on top of DefaultConfig.
//   - ReadInput/Run: read a day's input file once and solve it.
//   - Answer: a labelled integer result, formatted with thousands separators;
//     Detail carries the underlying value for verbose dumps (Dump).
//
// Config file:
//
//	[submarine]
//	input_dir     = inputs
//	input_pattern = input_day%d.txt
//
//	[day1]
//	window = 3
//
//	[day4]
//	input = /tmp/bingo.txt
//
//	[day6]
//	days      = 80
//	long_days = 256
//
// Errors:
//
//   - ErrUnknownDay: no solver registered for the requested day.
//   - ErrNoInput: the input file does not exist.
//   - ErrConfig: a config value has the wrong type.
//   - ErrNoAnswer: the input admits no answer (e.g. no bingo board ever wins).
package puzzle
