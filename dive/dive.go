// SPDX-License-Identifier: MIT

package dive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse indicates a malformed command line.
var ErrParse = errors.New("dive: parse error")

// Direction is the verb of a Command.
type Direction int

const (
	// Forward increases Horizontal by X; with aim it also increases Depth by Aim*X.
	Forward Direction = iota
	// Down increases Depth by X, or Aim by X when piloting with aim.
	Down
	// Up decreases Depth by X, or Aim by X when piloting with aim.
	Up
)

var directions = map[string]Direction{
	"forward": Forward,
	"down":    Down,
	"up":      Up,
}

// String returns the command verb.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Command is one parsed instruction.
type Command struct {
	Direction Direction
	Units     int
}

// Position is where the submarine ends up.
type Position struct {
	Horizontal int
	Depth      int
	Aim        int
}

// Product returns Horizontal × Depth.
func (p Position) Product() int {
	return p.Horizontal * p.Depth
}

// ParseCommand parses "<verb> <units>".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q: want \"<direction> <units>\"", ErrParse, line)
	}
	dir, ok := directions[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q: unknown direction %q", ErrParse, line, fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q: units %q", ErrParse, line, fields[1])
	}

	return Command{Direction: dir, Units: n}, nil
}

// Parse reads one command per non-blank line.
func Parse(text string) ([]Command, error) {
	var cmds []Command
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmds = append(cmds, c)
	}

	return cmds, nil
}

// Pilot applies commands with down/up moving the depth directly.
func Pilot(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			p.Horizontal += c.Units
		case Down:
			p.Depth += c.Units
		case Up:
			p.Depth -= c.Units
		}
	}

	return p
}

// PilotWithAim applies commands with down/up steering the aim.
func PilotWithAim(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			p.Horizontal += c.Units
			p.Depth += p.Aim * c.Units
		case Down:
			p.Aim += c.Units
		case Up:
			p.Aim -= c.Units
		}
	}

	return p
}
