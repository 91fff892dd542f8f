package solver

import (
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
)

// excludeSubsets runs one naked-subset pass of size k (2 for pairs, 3
// for triples) over all 27 units.
func (s *Solver) excludeSubsets(k int) {
	for _, unit := range s.puzzle.Units() {
		s.excludeSubsetsInUnit(unit, k)
	}
}

// excludeSubsetsInUnit finds candidate sets of exactly k digits shared
// by exactly k unfilled cells of the unit. Such a set is locked into
// those cells, so its digits are struck from every other unfilled cell
// in the unit. A removal that leaves a single candidate fills the cell
// on the spot, letting discoveries cascade within the same pass.
func (s *Solver) excludeSubsetsInUnit(cells []*puzzle.Cell, k int) {
	groups := make(map[puzzle.Candidates]int)
	var order []puzzle.Candidates
	for _, c := range cells {
		if c.Value != 0 || c.Candidates.Count() != k {
			continue
		}
		if _, seen := groups[c.Candidates]; !seen {
			order = append(order, c.Candidates)
		}
		groups[c.Candidates]++
	}

	for _, mask := range order {
		if groups[mask] != k {
			continue
		}
		locked := mask.Digits()
		for _, c := range cells {
			if c.Value != 0 || c.Candidates == mask {
				continue
			}
			for _, d := range locked {
				if !c.Candidates.Contains(d) {
					continue
				}
				c.Candidates.Remove(d)
				s.stats.EliminationOperations++
				s.stats.LogicalSteps++

				if v, ok := c.Candidates.Sole(); ok {
					c.Fill(v)
					s.stats.CellsFilled++
					s.stats.LogicalSteps++
				}
			}
		}
	}
}
