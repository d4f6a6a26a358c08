// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// Config defaults.
const (
	DefaultInputDir     = "."
	DefaultInputPattern = "input_day%d.txt"
	DefaultWindow       = 3
	DefaultDays         = 80
	DefaultLongDays     = 256
)

const rootSection = "submarine"

// Config locates the inputs and tunes the solvers.
type Config struct {
	InputDir     string
	InputPattern string         // fmt pattern taking the day number
	Inputs       map[int]string // explicit per-day input paths, override the pattern
	Window       int            // day 1 sliding window
	Days         int            // day 6 short simulation
	LongDays     int            // day 6 long simulation
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		InputDir:     DefaultInputDir,
		InputPattern: DefaultInputPattern,
		Inputs:       map[int]string{},
		Window:       DefaultWindow,
		Days:         DefaultDays,
		LongDays:     DefaultLongDays,
	}
}

// LoadConfig reads an INI file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	f, err := ini.LoadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("puzzle: loading config %s: %w", path, err)
	}

	return fromFile(f)
}

// ParseConfig reads INI text on top of DefaultConfig.
func ParseConfig(r io.Reader) (Config, error) {
	f, err := ini.Load(r)
	if err != nil {
		return Config{}, fmt.Errorf("puzzle: parsing config: %w", err)
	}

	return fromFile(f)
}

func fromFile(f ini.File) (Config, error) {
	cfg := DefaultConfig()
	if v, ok := f.Get(rootSection, "input_dir"); ok {
		cfg.InputDir = v
	}
	if v, ok := f.Get(rootSection, "input_pattern"); ok {
		cfg.InputPattern = v
	}
	ints := []struct {
		section, key string
		dst          *int
	}{
		{"day1", "window", &cfg.Window},
		{"day6", "days", &cfg.Days},
		{"day6", "long_days", &cfg.LongDays},
	}
	for _, it := range ints {
		v, ok := f.Get(it.section, it.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: [%s] %s = %q", ErrConfig, it.section, it.key, v)
		}
		*it.dst = n
	}
	for day := 1; day <= 25; day++ {
		if v, ok := f.Get(fmt.Sprintf("day%d", day), "input"); ok {
			cfg.Inputs[day] = v
		}
	}

	return cfg, nil
}

// InputPath returns where the input of day lives.
func (c Config) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok {
		return p
	}

	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
