// SPDX-License-Identifier: MIT

package puzzle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

// Answer is one labelled result of a day.
type Answer struct {
	Label  string
	Value  int64
	Detail any // optional value behind the answer, for verbose output
}

// String formats the answer as "label: 1,234".
func (a Answer) String() string {
	return a.Label + ": " + humanize.Comma(a.Value)
}

// Solver turns a day's raw input into its answers.
type Solver func(input string, cfg Config) ([]Answer, error)

// Puzzle is a registered day.
type Puzzle struct {
	Day   int
	Name  string
	Solve Solver
}

var registry = map[int]Puzzle{}

// Register adds a solver for day. Registering a day twice panics.
func Register(day int, name string, solve Solver) {
	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	registry[day] = Puzzle{Day: day, Name: name, Solve: solve}
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, error) {
	p, ok := registry[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return p, nil
}

// All returns the registered puzzles sorted by day.
func All() []Puzzle {
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })

	return out
}

// ReadInput reads a whole input file.
func ReadInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoInput, path)
	}
	if err != nil {
		return "", fmt.Errorf("puzzle: reading %s: %w", path, err)
	}

	return string(b), nil
}

// Run reads the input at path and solves it with p.
func (p Puzzle) Run(path string, cfg Config) ([]Answer, error) {
	input, err := ReadInput(path)
	if err != nil {
		return nil, err
	}
	answers, err := p.Solve(input, cfg)
	if err != nil {
		return nil, fmt.Errorf("day %d (%s): %w", p.Day, p.Name, err)
	}

	return answers, nil
}

// Dump pretty-prints v to w, one Go-syntax value per call.
func Dump(w io.Writer, v any) error {
	_, err := pretty.Fprintf(w, "%# v\n", v)

	return err
}
