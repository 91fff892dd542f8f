package puzzle

import (
	"github.com/puzzle-framework/deduku/pkg/deduku"
)

// Cell is one square of the board. Value 0 means empty; a non-zero
// value always implies Candidates is the singleton set of that value.
// For an empty cell Candidates holds the digits not yet excluded and
// may become empty if the board is contradictory.
type Cell struct {
	Value      int
	Candidates Candidates
	Row        int
	Col        int
}

// Box returns the index of the 3x3 box containing the cell.
func (c *Cell) Box() int {
	return (c.Row/3)*3 + (c.Col / 3)
}

// Fill records v as the cell's value and collapses its candidate set.
func (c *Cell) Fill(v int) {
	c.Value = v
	c.Candidates = SoleCandidate(v)
}

// Unit is a row, column or box: an ordered view of 9 cells held as
// indices into the puzzle's cell arena.
type Unit struct {
	ID      int
	indices [9]int
}

// Puzzle owns the 81 cells of a board plus the 27 unit views over
// them. It is a passive data holder: techniques mutate cells freely
// and the puzzle never enforces Sudoku legality.
type Puzzle struct {
	cells  [81]Cell
	rows   [9]Unit
	cols   [9]Unit
	boxes  [9]Unit
	solved bool
}

// New builds a puzzle from a 9x9 grid of digits, 0 denoting empty.
// The grid is assumed well-formed; shape and range validation belong
// to the loader.
func New(grid [9][9]int) *Puzzle {
	p := &Puzzle{}
	for i := range p.rows {
		p.rows[i].ID = i
		p.cols[i].ID = i
		p.boxes[i].ID = i
	}

	boxFill := [9]int{}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			i := row*9 + col
			cell := &p.cells[i]
			cell.Row = row
			cell.Col = col
			if v := grid[row][col]; v != 0 {
				cell.Fill(v)
			} else {
				cell.Candidates = AllCandidates()
			}

			box := cell.Box()
			p.rows[row].indices[col] = i
			p.cols[col].indices[row] = i
			p.boxes[box].indices[boxFill[box]] = i
			boxFill[box]++
		}
	}
	return p
}

// CellAt returns the cell at the given zero-based coordinates.
func (p *Puzzle) CellAt(row, col int) (*Cell, error) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return nil, &deduku.OutOfRangeError{Row: row, Col: col}
	}
	return &p.cells[row*9+col], nil
}

// Cells returns the cell arena in row-major order.
func (p *Puzzle) Cells() []*Cell {
	cs := make([]*Cell, len(p.cells))
	for i := range p.cells {
		cs[i] = &p.cells[i]
	}
	return cs
}

// Row returns the cells of row i in column order.
func (p *Puzzle) Row(i int) []*Cell {
	return p.unitCells(&p.rows[i])
}

// Col returns the cells of column i in row order.
func (p *Puzzle) Col(i int) []*Cell {
	return p.unitCells(&p.cols[i])
}

// Box returns the cells of box i in reading order.
func (p *Puzzle) Box(i int) []*Cell {
	return p.unitCells(&p.boxes[i])
}

// Units returns all 27 units as cell slices: rows, then columns, then
// boxes.
func (p *Puzzle) Units() [][]*Cell {
	units := make([][]*Cell, 0, 27)
	for i := 0; i < 9; i++ {
		units = append(units, p.Row(i))
	}
	for i := 0; i < 9; i++ {
		units = append(units, p.Col(i))
	}
	for i := 0; i < 9; i++ {
		units = append(units, p.Box(i))
	}
	return units
}

func (p *Puzzle) unitCells(u *Unit) []*Cell {
	cs := make([]*Cell, 9)
	for i, idx := range u.indices {
		cs[i] = &p.cells[idx]
	}
	return cs
}

// satisfied reports whether the unit's nine values are exactly the
// digits 1 through 9 with no repeats.
func (p *Puzzle) satisfied(u *Unit) bool {
	var seen Candidates
	for _, idx := range u.indices {
		v := p.cells[idx].Value
		if v == 0 || seen.Contains(v) {
			return false
		}
		seen |= SoleCandidate(v)
	}
	return seen == AllCandidates()
}

// IsSolved recomputes satisfaction of all 27 units and caches the
// result. It performs no other mutation.
func (p *Puzzle) IsSolved() bool {
	for i := 0; i < 9; i++ {
		if !p.satisfied(&p.rows[i]) || !p.satisfied(&p.cols[i]) || !p.satisfied(&p.boxes[i]) {
			p.solved = false
			return false
		}
	}
	p.solved = true
	return true
}

// Solved returns the cached result of the last IsSolved call.
func (p *Puzzle) Solved() bool {
	return p.solved
}

// Grid returns the current board values as a 9x9 array.
func (p *Puzzle) Grid() [9][9]int {
	var grid [9][9]int
	for i := range p.cells {
		grid[p.cells[i].Row][p.cells[i].Col] = p.cells[i].Value
	}
	return grid
}
