// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/submarine/bingo"
	"github.com/katalvlaran/submarine/diagnostic"
	"github.com/katalvlaran/submarine/dive"
	"github.com/katalvlaran/submarine/lanternfish"
	"github.com/katalvlaran/submarine/sonar"
	"github.com/katalvlaran/submarine/vents"
)

func init() {
	Register(1, "Sonar Sweep", solveSonar)
	Register(2, "Dive!", solveDive)
	Register(3, "Binary Diagnostic", solveDiagnostic)
	Register(4, "Giant Squid", solveBingo)
	Register(5, "Hydrothermal Venture", solveVents)
	Register(6, "Lanternfish", solveLanternfish)
}

func solveSonar(input string, cfg Config) ([]Answer, error) {
	depths, err := sonar.Parse(input)
	if err != nil {
		return nil, err
	}
	windowed, err := sonar.CountWindowIncreases(depths, cfg.Window)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Label: "increases", Value: int64(sonar.CountIncreases(depths))},
		{Label: fmt.Sprintf("window %d increases", cfg.Window), Value: int64(windowed)},
	}, nil
}

func solveDive(input string, _ Config) ([]Answer, error) {
	cmds, err := dive.Parse(input)
	if err != nil {
		return nil, err
	}
	plain, aimed := dive.Pilot(cmds), dive.PilotWithAim(cmds)

	return []Answer{
		{Label: "position", Value: int64(plain.Product()), Detail: plain},
		{Label: "position with aim", Value: int64(aimed.Product()), Detail: aimed},
	}, nil
}

func solveDiagnostic(input string, _ Config) ([]Answer, error) {
	lines, err := diagnostic.Parse(input)
	if err != nil {
		return nil, err
	}
	power, err := diagnostic.PowerReport(lines)
	if err != nil {
		return nil, err
	}
	life, err := diagnostic.LifeSupportReport(lines)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Label: "power consumption", Value: power.Consumption(), Detail: power},
		{Label: "life support", Value: life.Rating(), Detail: life},
	}, nil
}

// boardDetail is what verbose output shows of a winning board.
type boardDetail struct {
	Numbers     [][]int
	Marked      [][]bool
	State       bingo.State
	UnmarkedSum int
}

func solveBingo(input string, _ Config) ([]Answer, error) {
	g, err := bingo.Parse(input)
	if err != nil {
		return nil, err
	}
	first, ok := g.FirstWinner()
	if !ok {
		return nil, fmt.Errorf("%w: no board ever wins", ErrNoAnswer)
	}
	last, _ := g.LastWinner()

	answers := make([]Answer, 0, 2)
	for _, w := range []struct {
		label string
		board *bingo.Board
	}{{"first winner score", first}, {"last winner score", last}} {
		score, err := w.board.Score()
		if err != nil {
			return nil, err
		}
		answers = append(answers, Answer{
			Label: w.label,
			Value: int64(score),
			Detail: boardDetail{
				Numbers:     w.board.Numbers(),
				Marked:      w.board.Marked(),
				State:       w.board.State(),
				UnmarkedSum: w.board.UnmarkedSum(),
			},
		})
	}

	return answers, nil
}

func solveVents(input string, _ Config) ([]Answer, error) {
	m, err := vents.Parse(input)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Label: "axis-aligned overlaps", Value: int64(m.OverlapsAxisAligned())},
		{Label: "all overlaps", Value: int64(m.OverlapsAll())},
	}, nil
}

func solveLanternfish(input string, cfg Config) ([]Answer, error) {
	short, err := lanternfish.Parse(input)
	if err != nil {
		return nil, err
	}
	long := short.Clone()
	short.EvolveDays(cfg.Days)
	long.EvolveDays(cfg.LongDays)

	return []Answer{
		{Label: fmt.Sprintf("fish after %d days", cfg.Days), Value: short.Total(), Detail: short.Counts()},
		{Label: fmt.Sprintf("fish after %d days", cfg.LongDays), Value: long.Total(), Detail: long.Counts()},
	}, nil
}
