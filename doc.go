// SPDX-License-Identifier: MIT

// Package submarine is a collection of small solvers for the Advent of Code
// 2021 puzzles, one package per day, plus the shared pieces they build on.
//
// Packages:
//
//	grid/        — rectangular integer grid: parsing, safe accessors, rendering
//	sonar/       — day 1, depth increases over a sliding window
//	dive/        — day 2, command navigation with and without aim
//	diagnostic/  — day 3, power consumption and life support ratings
//	bingo/       — day 4, bingo replay with first/last winner and scores
//	vents/       — day 5, vent line rasterization and overlap counting
//	lanternfish/ — day 6, bucketed population growth
//	puzzle/      — day registry, input loading, INI configuration
//	cmd/submarine — command line front end
//
// Every solver is a pure, single-threaded transformation of text already
// read into memory; only cmd/submarine touches the file system.
//
//	go run ./cmd/submarine -day 4 -input input_day4.txt
package submarine
