package deduku

import (
	"fmt"
)

// Strategy selects the technique pipeline a Solver runs on each
// iteration. The set of strategies is closed; values outside it are
// rejected at the start of Solve.
type Strategy int

const (
	// StrategyElimination runs basic candidate elimination only.
	StrategyElimination Strategy = iota
	// StrategyEliminationPlus adds naked-pair exclusion.
	StrategyEliminationPlus
	// StrategyEliminationPro adds naked-pair and naked-triple exclusion.
	StrategyEliminationPro
	// StrategyRandom fills random cells with random valid digits
	// without maintaining candidate sets. It has no backtracking and
	// is intended as a benchmarking baseline, not a reliable solver.
	StrategyRandom
)

func (s Strategy) String() string {
	switch s {
	case StrategyElimination:
		return "elimination"
	case StrategyEliminationPlus:
		return "elimination_plus"
	case StrategyEliminationPro:
		return "elimination_pro"
	case StrategyRandom:
		return "random"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// StrategyFromString returns the Strategy named by s.
func StrategyFromString(s string) (Strategy, error) {
	switch s {
	case "elimination":
		return StrategyElimination, nil
	case "elimination_plus":
		return StrategyEliminationPlus, nil
	case "elimination_pro":
		return StrategyEliminationPro, nil
	case "random":
		return StrategyRandom, nil
	}
	return 0, &InvalidStrategyError{Strategy: s}
}

// Strategies lists every valid Strategy in pipeline-strength order.
func Strategies() []Strategy {
	return []Strategy{StrategyElimination, StrategyEliminationPlus, StrategyEliminationPro, StrategyRandom}
}

// InvalidStrategyError reports a strategy outside the closed set.
type InvalidStrategyError struct {
	Strategy string
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("invalid strategy (%s): must be one of elimination, elimination_plus, elimination_pro, random", e.Strategy)
}

// OutOfRangeError reports cell coordinates outside the 9x9 board.
type OutOfRangeError struct {
	Row int
	Col int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell position (%d, %d) out of range: row and column must be in [0, 8]", e.Row, e.Col)
}

// Stats accumulates counters describing the work a Solver performed.
// A logical step is charged per filled cell examined during basic
// elimination and per cascading operation during subset exclusion; an
// elimination operation is charged per successful candidate removal.
type Stats struct {
	CellsFilled               int
	EliminationOperations     int
	SolverIterations          int
	LogicalSteps              int
	Solved                    bool
	Unsolvable                bool
	IterationsWithoutProgress int
}

// TotalReasoningOperations returns the combined count of logical steps
// and elimination operations.
func (s Stats) TotalReasoningOperations() int {
	return s.LogicalSteps + s.EliminationOperations
}

// EfficiencyRatio returns cells filled per solver iteration.
func (s Stats) EfficiencyRatio() float64 {
	return float64(s.CellsFilled) / float64(max(1, s.SolverIterations))
}

// EliminationsPerCell returns elimination operations per filled cell.
func (s Stats) EliminationsPerCell() float64 {
	return float64(s.EliminationOperations) / float64(max(1, s.CellsFilled))
}
