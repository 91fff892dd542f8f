package root

import (
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/deduku/cmd/bench"

	"github.com/puzzle-framework/deduku/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deduku",
		Short: "Deduku is a deduction-based sudoku solver",
		Long: `A sudoku solver that works by iterative logical deduction
(candidate elimination plus naked-pair and naked-triple exclusion)
rather than brute-force search.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(bench.NewBenchCommand())

	return rootCmd
}
