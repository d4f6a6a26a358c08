// SPDX-License-Identifier: MIT

// Command submarine solves the Advent of Code 2021 puzzles registered in
// package puzzle and prints their answers.
//
// Usage:
//
//	submarine [-day N] [-input path] [-config file.ini] [-v] [-fgprof out.pprof]
//
// With -day 0 (the default) every registered day runs in order, each
// reading its input from the configured location.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/felixge/fgprof"
	"github.com/katalvlaran/submarine/puzzle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("submarine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	day := fs.Int("day", 0, "day to solve; 0 solves every registered day")
	input := fs.String("input", "", "input file (only with -day); defaults to the configured location")
	configPath := fs.String("config", "", "INI configuration file")
	verbose := fs.Bool("v", false, "debug logging and dump the values behind each answer")
	profile := fs.String("fgprof", "", "write a wall-clock profile of the run to this file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *input != "" && *day == 0 {
		logger.Error("-input requires -day")
		return 2
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			logger.Error("creating profile", "err", err)
			return 1
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				logger.Error("writing profile", "err", err)
			}
		}()
	}

	cfg := puzzle.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = puzzle.LoadConfig(*configPath); err != nil {
			logger.Error("loading config", "err", err)
			return 1
		}
		logger.Debug("config loaded", "path", *configPath)
	}

	puzzles := puzzle.All()
	if *day != 0 {
		p, err := puzzle.Lookup(*day)
		if err != nil {
			logger.Error("lookup", "err", err)
			return 1
		}
		puzzles = []puzzle.Puzzle{p}
		if *input != "" {
			cfg.Inputs[*day] = *input
		}
	}

	failed := false
	for _, p := range puzzles {
		path := cfg.InputPath(p.Day)
		logger.Debug("solving", "day", p.Day, "name", p.Name, "input", path)
		answers, err := p.Run(path, cfg)
		if err != nil {
			// Missing inputs are expected when running every day.
			if *day == 0 && errors.Is(err, puzzle.ErrNoInput) {
				logger.Warn("skipping day", "day", p.Day, "err", err)
				continue
			}
			logger.Error("solve", "day", p.Day, "err", err)
			failed = true
			continue
		}
		fmt.Fprintf(stdout, "Day %02d  %s\n", p.Day, p.Name)
		for _, a := range answers {
			fmt.Fprintf(stdout, "\t%s\n", a)
			if *verbose && a.Detail != nil {
				if err := puzzle.Dump(stdout, a.Detail); err != nil {
					logger.Error("dump", "err", err)
				}
			}
		}
	}
	if failed {
		return 1
	}

	return 0
}
