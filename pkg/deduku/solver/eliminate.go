package solver

import (
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
)

// eliminate runs one pass of basic candidate elimination in two
// phases: first sweep every filled cell and strike its value from the
// candidate sets of all other cells in its row, column and box, then
// fill every cell whose candidate set shrank to a single digit. The
// fill phase must not run mid-sweep: a single discovered early would
// not propagate within the same pass.
func (s *Solver) eliminate() {
	for _, cell := range s.puzzle.Cells() {
		if cell.Value == 0 {
			continue
		}
		s.stats.LogicalSteps++

		s.removeFromUnit(s.puzzle.Row(cell.Row), cell, cell.Value)
		s.removeFromUnit(s.puzzle.Col(cell.Col), cell, cell.Value)
		s.removeFromUnit(s.puzzle.Box(cell.Box()), cell, cell.Value)
	}

	for _, cell := range s.puzzle.Cells() {
		if cell.Value != 0 {
			continue
		}
		if d, ok := cell.Candidates.Sole(); ok {
			cell.Fill(d)
			s.stats.CellsFilled++
		}
	}
}

// removeFromUnit strikes v from every cell of the unit except origin.
// Only removals of a still-present candidate count as elimination
// operations; repeat removals are no-ops.
func (s *Solver) removeFromUnit(cells []*puzzle.Cell, origin *puzzle.Cell, v int) {
	for _, c := range cells {
		if c == origin {
			continue
		}
		if c.Candidates.Contains(v) {
			c.Candidates.Remove(v)
			s.stats.EliminationOperations++
		}
	}
}
