// SPDX-License-Identifier: MIT

package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty indicates a report without any line.
	ErrEmpty = errors.New("diagnostic: empty report")
	// ErrParse indicates a character other than '0' or '1'.
	ErrParse = errors.New("diagnostic: parse error")
	// ErrRagged indicates lines of differing widths.
	ErrRagged = errors.New("diagnostic: all lines must have the same width")
	// ErrNoRating indicates bit filtering did not isolate a single line.
	ErrNoRating = errors.New("diagnostic: no unique rating")
)

// Power holds the gamma and epsilon rates in binary form.
type Power struct {
	GammaBinary   string
	EpsilonBinary string
}

// Gamma returns the gamma rate.
func (p Power) Gamma() int64 { return binary(p.GammaBinary) }

// Epsilon returns the epsilon rate.
func (p Power) Epsilon() int64 { return binary(p.EpsilonBinary) }

// Consumption returns gamma × epsilon.
func (p Power) Consumption() int64 { return p.Gamma() * p.Epsilon() }

// LifeSupport holds the oxygen generator and CO2 scrubber ratings in binary form.
type LifeSupport struct {
	OxygenBinary string
	CO2Binary    string
}

// Oxygen returns the oxygen generator rating.
func (l LifeSupport) Oxygen() int64 { return binary(l.OxygenBinary) }

// CO2 returns the CO2 scrubber rating.
func (l LifeSupport) CO2() int64 { return binary(l.CO2Binary) }

// Rating returns oxygen × CO2.
func (l LifeSupport) Rating() int64 { return l.Oxygen() * l.CO2() }

// binary decodes a validated bit string.
func binary(bits string) int64 {
	v, _ := strconv.ParseInt(bits, 2, 64)

	return v
}

// Parse reads one bit string per non-blank line and validates the report.
func Parse(text string) ([]string, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if err := validate(lines); err != nil {
		return nil, err
	}

	return lines, nil
}

func validate(lines []string) error {
	if len(lines) == 0 {
		return ErrEmpty
	}
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return fmt.Errorf("line %d: %w", i+1, ErrRagged)
		}
		if strings.Trim(line, "01") != "" {
			return fmt.Errorf("%w: line %d: %q", ErrParse, i+1, line)
		}
	}
	if width > 63 {
		return fmt.Errorf("%w: %d bits do not fit in an int64", ErrParse, width)
	}

	return nil
}

// onesAt counts the lines with '1' at column col.
func onesAt(lines []string, col int) int {
	n := 0
	for _, l := range lines {
		if l[col] == '1' {
			n++
		}
	}

	return n
}

// PowerReport builds gamma from the most common bit of every column
// ('1' on ties) and epsilon from the least common one.
func PowerReport(lines []string) (Power, error) {
	if err := validate(lines); err != nil {
		return Power{}, err
	}
	width := len(lines[0])
	gamma := make([]byte, width)
	epsilon := make([]byte, width)
	for col := 0; col < width; col++ {
		if 2*onesAt(lines, col) >= len(lines) {
			gamma[col], epsilon[col] = '1', '0'
		} else {
			gamma[col], epsilon[col] = '0', '1'
		}
	}

	return Power{GammaBinary: string(gamma), EpsilonBinary: string(epsilon)}, nil
}

// LifeSupportReport filters the report column by column: oxygen keeps the
// most common bit ('1' on ties), CO2 keeps the least common bit ('0' on
// ties), until a single line remains.
func LifeSupportReport(lines []string) (LifeSupport, error) {
	if err := validate(lines); err != nil {
		return LifeSupport{}, err
	}
	oxygen, err := filter(lines, func(ones, total int) byte {
		if 2*ones >= total {
			return '1'
		}
		return '0'
	})
	if err != nil {
		return LifeSupport{}, fmt.Errorf("oxygen generator: %w", err)
	}
	co2, err := filter(lines, func(ones, total int) byte {
		if 2*ones >= total {
			return '0'
		}
		return '1'
	})
	if err != nil {
		return LifeSupport{}, fmt.Errorf("CO2 scrubber: %w", err)
	}

	return LifeSupport{OxygenBinary: oxygen, CO2Binary: co2}, nil
}

// filter narrows lines column by column, keeping those whose bit equals keep(ones, total).
func filter(lines []string, keep func(ones, total int) byte) (string, error) {
	cands := append([]string(nil), lines...)
	for col := 0; col < len(lines[0]) && len(cands) > 1; col++ {
		want := keep(onesAt(cands, col), len(cands))
		next := cands[:0]
		for _, c := range cands {
			if c[col] == want {
				next = append(next, c)
			}
		}
		cands = next
	}
	if len(cands) != 1 {
		return "", ErrNoRating
	}

	return cands[0], nil
}
