package solve

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puzzle-framework/deduku/internal/gridio"
	"github.com/puzzle-framework/deduku/pkg/deduku"
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
	"github.com/puzzle-framework/deduku/pkg/deduku/solver"
)

func NewSolveCommand() *cobra.Command {
	var strategyName string
	var attempts int

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a sudoku puzzle given as 9 lines of 9 digits",
		Long: `Solves a sudoku puzzle read from a text file. The file holds 9 lines
of 9 digits each, with 0 marking an empty cell. For instance:

010086032
020009650
603000910
001543206
040020081
250100000
700005000
100070865
098001304
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], strategyName, attempts)
		},
	}

	cmd.Flags().StringVarP(&strategyName, "strategy", "s", deduku.StrategyElimination.String(),
		"solving strategy: elimination, elimination_plus, elimination_pro or random")
	cmd.Flags().IntVar(&attempts, "attempts", solver.DefaultAttemptCap,
		"attempt cap for the random strategy")

	return cmd
}

func solve(path string, strategyName string, attempts int) error {
	strategy, err := deduku.StrategyFromString(strategyName)
	if err != nil {
		return err
	}

	// open puzzle file
	puzzleFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening puzzle file (%s): %w", path, err)
	}
	defer puzzleFile.Close()

	grid, err := gridio.Parse(puzzleFile)
	if err != nil {
		return fmt.Errorf("error parsing puzzle file (%s): %w", path, err)
	}

	p := puzzle.New(grid)
	fmt.Println(gridio.Render(p.Grid()))

	stats, err := solver.New(p, strategy, solver.WithAttemptCap(attempts)).Solve()
	if err != nil {
		return err
	}

	if stats.Solved {
		fmt.Printf("solved with %s in %d iterations:\n\n", strategy, stats.SolverIterations)
	} else {
		fmt.Printf("unsolvable by %s after %d iterations:\n\n", strategy, stats.SolverIterations)
	}
	fmt.Println(gridio.Render(p.Grid()))

	fmt.Printf("cells filled:           %d\n", stats.CellsFilled)
	fmt.Printf("elimination operations: %d\n", stats.EliminationOperations)
	fmt.Printf("logical steps:          %d\n", stats.LogicalSteps)
	fmt.Printf("reasoning operations:   %d\n", stats.TotalReasoningOperations())
	fmt.Printf("efficiency ratio:       %.3f\n", stats.EfficiencyRatio())
	fmt.Printf("eliminations per cell:  %.3f\n", stats.EliminationsPerCell())

	return nil
}
