package solver

import (
	"errors"
	"math/rand"
	"time"

	"github.com/puzzle-framework/deduku/pkg/deduku"
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
)

// maxStagnantIterations is the number of consecutive iterations with
// zero cells filled after which the solver gives up. Stalling is a
// heuristic outcome: it certifies only that the configured techniques
// made no further progress, not that the puzzle has no solution.
const maxStagnantIterations = 5

// DefaultAttemptCap bounds the random-fill strategy.
const DefaultAttemptCap = 10000

// ErrSolverReused is returned by Solve when called a second time. A
// Solver is bound to one puzzle for one run; solving again requires a
// new instance.
var ErrSolverReused = errors.New("solver is single-use: Solve was already called")

// Solver applies one strategy's technique pipeline to one puzzle,
// mutating its cells in place across repeated passes until the board
// is solved or the techniques stall.
type Solver struct {
	puzzle     *puzzle.Puzzle
	strategy   deduku.Strategy
	stats      deduku.Stats
	attemptCap int
	rng        *rand.Rand
	done       bool
}

func New(p *puzzle.Puzzle, strategy deduku.Strategy, options ...Option) *Solver {
	s := &Solver{
		puzzle:     p,
		strategy:   strategy,
		attemptCap: DefaultAttemptCap,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

type Option func(s *Solver)

// WithAttemptCap overrides the random strategy's attempt cap.
func WithAttemptCap(n int) Option {
	return func(s *Solver) {
		s.attemptCap = n
	}
}

// WithRand supplies the pseudo-random source used by the random
// strategy, the solver's only source of non-determinism.
func WithRand(rng *rand.Rand) Option {
	return func(s *Solver) {
		s.rng = rng
	}
}

// Solve runs the configured strategy to one of its terminal states and
// returns the accumulated statistics. An unrecognized strategy fails
// before any cell is mutated.
func (s *Solver) Solve() (deduku.Stats, error) {
	if s.done {
		return s.stats, ErrSolverReused
	}

	switch s.strategy {
	case deduku.StrategyElimination:
		s.done = true
		s.solveByDeduction(false, false)
	case deduku.StrategyEliminationPlus:
		s.done = true
		s.solveByDeduction(true, false)
	case deduku.StrategyEliminationPro:
		s.done = true
		s.solveByDeduction(true, true)
	case deduku.StrategyRandom:
		s.done = true
		s.solveByRandomFill()
	default:
		return s.stats, &deduku.InvalidStrategyError{Strategy: s.strategy.String()}
	}
	return s.stats, nil
}

// Stats returns the counters accumulated so far.
func (s *Solver) Stats() deduku.Stats {
	return s.stats
}

// solveByDeduction is the convergence loop: each iteration runs basic
// elimination, then the enabled subset-exclusion passes, then checks
// for progress and solved-ness. Five consecutive iterations without a
// fill terminate the run as unsolvable.
func (s *Solver) solveByDeduction(pairs, triples bool) {
	for !s.stats.Solved && !s.stats.Unsolvable {
		s.stats.SolverIterations++
		filledBefore := s.stats.CellsFilled

		s.eliminate()
		if pairs {
			s.excludeSubsets(2)
		}
		if triples {
			s.excludeSubsets(3)
		}

		if s.stats.CellsFilled == filledBefore {
			s.stats.IterationsWithoutProgress++
			if s.stats.IterationsWithoutProgress >= maxStagnantIterations {
				s.stats.Unsolvable = true
				break
			}
		} else {
			s.stats.IterationsWithoutProgress = 0
		}

		s.stats.Solved = s.puzzle.IsSolved()
	}
}
