package solver_test

import (
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzle-framework/deduku/pkg/deduku"
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
	"github.com/puzzle-framework/deduku/pkg/deduku/solver"
)

// TestSolvedGridSatisfiesSudokuRules cross-checks a solved board
// against a CNF encoding of the sudoku rules, so the deduction
// pipeline is verified by an independent method.
func TestSolvedGridSatisfiesSudokuRules(t *testing.T) {
	grid := [9][9]int{
		{0, 1, 0, 0, 8, 6, 0, 3, 2},
		{0, 2, 0, 0, 0, 9, 6, 5, 0},
		{6, 0, 3, 0, 0, 0, 9, 1, 0},
		{0, 0, 1, 5, 4, 3, 2, 0, 6},
		{0, 4, 0, 0, 2, 0, 0, 8, 1},
		{2, 5, 0, 1, 0, 0, 0, 0, 0},
		{7, 0, 0, 0, 0, 5, 0, 0, 0},
		{1, 0, 0, 0, 7, 0, 8, 6, 5},
		{0, 9, 8, 0, 0, 1, 3, 0, 4},
	}

	p := puzzle.New(grid)
	stats, err := solver.New(p, deduku.StrategyEliminationPro).Solve()
	require.NoError(t, err)
	require.True(t, stats.Solved)

	g := newRulesSolver()
	final := p.Grid()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			g.Assume(lit(row, col, final[row][col]-1))
		}
	}
	assert.Equal(t, 1, g.Solve(), "solved board violates the sudoku rules")
}

// one variable per triple (row, col, n) indicating that the number n
// appears at position (row, col)
func lit(row, col, num int) z.Lit {
	n := num
	n += col * 9
	n += row * 81
	return z.Var(n + 1).Pos()
}

// newRulesSolver encodes the sudoku rules as CNF: every position holds
// a number, and no number repeats within a row, column or box.
func newRulesSolver() *gini.Gini {
	g := gini.New()

	// every position on the board has a number
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			for n := 0; n < 9; n++ {
				g.Add(lit(row, col, n))
			}
			g.Add(0)
		}
	}

	// every row has unique numbers
	for n := 0; n < 9; n++ {
		for row := 0; row < 9; row++ {
			for colA := 0; colA < 9; colA++ {
				for colB := colA + 1; colB < 9; colB++ {
					g.Add(lit(row, colA, n).Not())
					g.Add(lit(row, colB, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// every column has unique numbers
	for n := 0; n < 9; n++ {
		for col := 0; col < 9; col++ {
			for rowA := 0; rowA < 9; rowA++ {
				for rowB := rowA + 1; rowB < 9; rowB++ {
					g.Add(lit(rowA, col, n).Not())
					g.Add(lit(rowB, col, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// every box has unique numbers
	offs := []struct{ r, c int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for x := 0; x < 9; x += 3 {
		for y := 0; y < 9; y += 3 {
			for n := 0; n < 9; n++ {
				for i, offA := range offs {
					for j := i + 1; j < len(offs); j++ {
						offB := offs[j]
						g.Add(lit(x+offA.r, y+offA.c, n).Not())
						g.Add(lit(x+offB.r, y+offB.c, n).Not())
						g.Add(0)
					}
				}
			}
		}
	}

	return g
}
