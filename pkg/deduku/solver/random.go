package solver

import (
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
)

// solveByRandomFill is the non-propagating baseline: pick an empty
// cell at random, compute its valid digits directly from the filled
// values of its row, column and box, and assign one at random. There
// is no backtracking, so a cell with no valid digit is a dead end and
// the run reports unsolvable. The loop is bounded by the attempt cap.
func (s *Solver) solveByRandomFill() {
	for attempt := 0; attempt < s.attemptCap; attempt++ {
		s.stats.SolverIterations++

		empty := s.emptyCells()
		if len(empty) == 0 {
			s.stats.Solved = s.puzzle.IsSolved()
			return
		}

		cell := empty[s.rng.Intn(len(empty))]
		valid := s.validDigits(cell)
		if len(valid) == 0 {
			s.stats.Unsolvable = true
			return
		}

		cell.Fill(valid[s.rng.Intn(len(valid))])
		s.stats.CellsFilled++

		if s.puzzle.IsSolved() {
			s.stats.Solved = true
			return
		}
	}
	s.stats.Unsolvable = true
}

func (s *Solver) emptyCells() []*puzzle.Cell {
	var empty []*puzzle.Cell
	for _, c := range s.puzzle.Cells() {
		if c.Value == 0 {
			empty = append(empty, c)
		}
	}
	return empty
}

// validDigits checks each digit against the filled values of the
// cell's units, bypassing the maintained candidate sets entirely.
func (s *Solver) validDigits(cell *puzzle.Cell) []int {
	var used puzzle.Candidates
	for _, units := range [][]*puzzle.Cell{
		s.puzzle.Row(cell.Row),
		s.puzzle.Col(cell.Col),
		s.puzzle.Box(cell.Box()),
	} {
		for _, c := range units {
			if c.Value != 0 {
				used |= puzzle.SoleCandidate(c.Value)
			}
		}
	}

	var valid []int
	for d := 1; d <= 9; d++ {
		if !used.Contains(d) {
			valid = append(valid, d)
		}
	}
	return valid
}
