// SPDX-License-Identifier: MIT

package puzzle

import "errors"

var (
	// ErrUnknownDay indicates no solver is registered for a day.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrNoInput indicates the day's input file is missing.
	ErrNoInput = errors.New("puzzle: input not found")
	// ErrConfig indicates an invalid configuration value.
	ErrConfig = errors.New("puzzle: invalid config")
	// ErrNoAnswer indicates a well-formed input that has no answer.
	ErrNoAnswer = errors.New("puzzle: no answer")
)
