package puzzle_test

import (
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzle-framework/deduku/pkg/deduku"
	"github.com/puzzle-framework/deduku/pkg/deduku/puzzle"
)

func TestPuzzle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Puzzle Suite")
}

// solvedGrid is a complete valid board (each row shifted cyclically).
var solvedGrid = [9][9]int{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 3, 4, 5, 6, 7, 8, 9, 1},
	{5, 6, 7, 8, 9, 1, 2, 3, 4},
	{8, 9, 1, 2, 3, 4, 5, 6, 7},
	{3, 4, 5, 6, 7, 8, 9, 1, 2},
	{6, 7, 8, 9, 1, 2, 3, 4, 5},
	{9, 1, 2, 3, 4, 5, 6, 7, 8},
}

var _ = Describe("Candidates", func() {
	It("should start with all nine digits", func() {
		c := puzzle.AllCandidates()
		Expect(c.Count()).To(Equal(9))
		for d := 1; d <= 9; d++ {
			Expect(c.Contains(d)).To(BeTrue())
		}
	})

	It("should remove digits idempotently", func() {
		c := puzzle.AllCandidates()
		c.Remove(4)
		Expect(c.Contains(4)).To(BeFalse())
		Expect(c.Count()).To(Equal(8))
		c.Remove(4)
		Expect(c.Count()).To(Equal(8))
	})

	It("should report the sole member only for singletons", func() {
		c := puzzle.SoleCandidate(7)
		d, ok := c.Sole()
		Expect(ok).To(BeTrue())
		Expect(d).To(Equal(7))

		_, ok = puzzle.AllCandidates().Sole()
		Expect(ok).To(BeFalse())
	})

	It("should list its digits in order", func() {
		c := puzzle.SoleCandidate(3) | puzzle.SoleCandidate(1) | puzzle.SoleCandidate(9)
		Expect(c.Digits()).To(Equal([]int{1, 3, 9}))
		Expect(c.String()).To(Equal("{1, 3, 9}"))
	})
})

var _ = Describe("Puzzle", func() {
	var p *puzzle.Puzzle

	BeforeEach(func() {
		var grid [9][9]int
		grid[0][4] = 8
		p = puzzle.New(grid)
	})

	Describe("CellAt", func() {
		It("should return the cell at valid coordinates", func() {
			cell, err := p.CellAt(0, 4)
			Expect(err).ToNot(HaveOccurred())
			Expect(cell.Value).To(Equal(8))
			Expect(cell.Row).To(Equal(0))
			Expect(cell.Col).To(Equal(4))
			Expect(cell.Box()).To(Equal(1))
		})

		It("should fail for coordinates outside the board", func() {
			for _, pos := range [][2]int{{-1, 0}, {0, -1}, {9, 0}, {0, 9}} {
				_, err := p.CellAt(pos[0], pos[1])
				var rangeErr *deduku.OutOfRangeError
				Expect(err).To(HaveOccurred())
				Expect(errors.As(err, &rangeErr)).To(BeTrue())
			}
		})
	})

	Describe("topology", func() {
		It("should give a filled cell a singleton candidate set", func() {
			cell, err := p.CellAt(0, 4)
			Expect(err).ToNot(HaveOccurred())
			Expect(cell.Candidates).To(Equal(puzzle.SoleCandidate(8)))
		})

		It("should give an empty cell all nine candidates", func() {
			cell, err := p.CellAt(5, 5)
			Expect(err).ToNot(HaveOccurred())
			Expect(cell.Candidates).To(Equal(puzzle.AllCandidates()))
		})

		It("should place every cell in exactly one row, column and box", func() {
			type membership struct{ rows, cols, boxes int }
			counts := map[*puzzle.Cell]*membership{}
			for _, c := range p.Cells() {
				counts[c] = &membership{}
			}
			for i := 0; i < 9; i++ {
				for _, c := range p.Row(i) {
					counts[c].rows++
				}
				for _, c := range p.Col(i) {
					counts[c].cols++
				}
				for _, c := range p.Box(i) {
					counts[c].boxes++
				}
			}
			for _, m := range counts {
				Expect(*m).To(Equal(membership{rows: 1, cols: 1, boxes: 1}))
			}
		})

		It("should derive the box from row and column", func() {
			cell, err := p.CellAt(4, 7)
			Expect(err).ToNot(HaveOccurred())
			Expect(cell.Box()).To(Equal(5))
			Expect(p.Box(5)).To(ContainElement(cell))
		})

		It("should expose 27 units", func() {
			Expect(p.Units()).To(HaveLen(27))
		})
	})

	Describe("IsSolved", func() {
		It("should be false with empty cells", func() {
			Expect(p.IsSolved()).To(BeFalse())
			Expect(p.Solved()).To(BeFalse())
		})

		It("should be true for a complete valid board", func() {
			q := puzzle.New(solvedGrid)
			Expect(q.IsSolved()).To(BeTrue())
			Expect(q.Solved()).To(BeTrue())
		})

		It("should be false with a single empty cell", func() {
			grid := solvedGrid
			grid[4][4] = 0
			Expect(puzzle.New(grid).IsSolved()).To(BeFalse())
		})

		It("should be false when a unit repeats a digit", func() {
			grid := solvedGrid
			grid[0][8] = 1
			Expect(puzzle.New(grid).IsSolved()).To(BeFalse())
		})
	})

	Describe("Grid", func() {
		It("should round-trip the construction grid", func() {
			q := puzzle.New(solvedGrid)
			Expect(q.Grid()).To(Equal(solvedGrid))
		})
	})
})
