package bench

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/deduku/internal/gridio"
	"github.com/puzzle-framework/deduku/pkg/deduku"
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
	"github.com/puzzle-framework/deduku/pkg/deduku/solver"
)

func NewBenchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bench <dir>",
		Short: "Benchmarks every strategy against every puzzle in a directory",
		Long: `Runs every solving strategy against every *.txt puzzle file in the
given directory and prints a per-puzzle comparison table plus summary
statistics. Each run starts from a fresh copy of the puzzle.

The strategy set and the random attempt cap can be overridden through
the environment (or a .env file in the working directory):

  DEDUKU_STRATEGIES      comma-separated strategy names
  DEDUKU_RANDOM_ATTEMPTS attempt cap for the random strategy
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(args[0])
			if err != nil {
				return fmt.Errorf("directory (%s) not found", args[0])
			}
			if !info.IsDir() {
				return fmt.Errorf("(%s) is not a directory", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench(args[0])
		},
	}
}

func bench(dir string) error {
	// .env is optional
	_ = godotenv.Load()

	strategies, err := configuredStrategies()
	if err != nil {
		return err
	}
	attempts, err := configuredAttempts()
	if err != nil {
		return err
	}

	names, grids, err := loadPuzzles(dir)
	if err != nil {
		return err
	}

	results := make(map[deduku.Strategy]map[string]deduku.Stats)
	for _, strategy := range strategies {
		results[strategy] = make(map[string]deduku.Stats, len(grids))
		for _, name := range names {
			// fresh copy per run
			p := puzzle.New(grids[name])
			stats, err := solver.New(p, strategy, solver.WithAttemptCap(attempts)).Solve()
			if err != nil {
				return err
			}
			results[strategy][name] = stats
		}
	}

	printTable(os.Stdout, strategies, names, results)
	printSummary(os.Stdout, strategies, names, results)
	return nil
}

func configuredStrategies() ([]deduku.Strategy, error) {
	env := os.Getenv("DEDUKU_STRATEGIES")
	if env == "" {
		return deduku.Strategies(), nil
	}
	var strategies []deduku.Strategy
	for _, name := range strings.Split(env, ",") {
		strategy, err := deduku.StrategyFromString(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("invalid DEDUKU_STRATEGIES entry: %w", err)
		}
		strategies = append(strategies, strategy)
	}
	return strategies, nil
}

func configuredAttempts() (int, error) {
	env := os.Getenv("DEDUKU_RANDOM_ATTEMPTS")
	if env == "" {
		return solver.DefaultAttemptCap, nil
	}
	attempts, err := strconv.Atoi(env)
	if err != nil || attempts <= 0 {
		return 0, fmt.Errorf("invalid DEDUKU_RANDOM_ATTEMPTS (%s): must be a positive integer", env)
	}
	return attempts, nil
}

func loadPuzzles(dir string) ([]string, map[string][9][9]int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no puzzle files (*.txt) found in %s", dir)
	}

	var names []string
	grids := make(map[string][9][9]int, len(paths))
	for _, path := range paths {
		puzzleFile, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening puzzle file (%s): %w", path, err)
		}
		grid, err := gridio.Parse(puzzleFile)
		puzzleFile.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing puzzle file (%s): %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), ".txt")
		names = append(names, name)
		grids[name] = grid
	}
	return names, grids, nil
}

func printTable(out io.Writer, strategies []deduku.Strategy, names []string, results map[deduku.Strategy]map[string]deduku.Stats) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "Method")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)

	for _, strategy := range strategies {
		fmt.Fprint(w, strategy)
		for _, name := range names {
			if results[strategy][name].Solved {
				fmt.Fprint(w, "\tsolved")
			} else {
				fmt.Fprint(w, "\tunsolved")
			}
		}
		fmt.Fprintln(w)

		for _, name := range names {
			stats := results[strategy][name]
			if stats.Solved {
				fmt.Fprintf(w, "\tER: %.3f", stats.EfficiencyRatio())
			} else {
				fmt.Fprintf(w, "\tCF: %d", stats.CellsFilled)
			}
		}
		fmt.Fprintln(w)

		for _, name := range names {
			stats := results[strategy][name]
			if stats.Solved {
				fmt.Fprintf(w, "\tTO: %d", stats.TotalReasoningOperations())
			} else {
				fmt.Fprint(w, "\t")
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func printSummary(out io.Writer, strategies []deduku.Strategy, names []string, results map[deduku.Strategy]map[string]deduku.Stats) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "summary:")
	for _, strategy := range strategies {
		solved := 0
		totalCells := 0
		totalEfficiency := 0.0
		for _, name := range names {
			stats := results[strategy][name]
			if stats.Solved {
				solved++
			}
			totalCells += stats.CellsFilled
			totalEfficiency += stats.EfficiencyRatio()
		}
		fmt.Fprintf(out, "  %s: %d/%d solved, %d cells filled, average efficiency ratio %.3f\n",
			strategy, solved, len(names), totalCells, totalEfficiency/float64(len(names)))
	}
}
