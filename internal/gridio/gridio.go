// Package gridio reads and renders 9x9 sudoku grids. Puzzle files are
// nine lines of nine digits, 0 denoting an empty cell; blank lines are
// ignored.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a puzzle grid from r, rejecting anything that is not
// exactly 9 rows of exactly 9 digits in [0, 9].
func Parse(r io.Reader) ([9][9]int, error) {
	var grid [9][9]int

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if row == 9 {
			return grid, fmt.Errorf("invalid grid: expected exactly 9 rows, found extra row (%s)", line)
		}
		if len(line) != 9 {
			return grid, fmt.Errorf("invalid row (%s): expected exactly 9 digits, got %d characters", line, len(line))
		}
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return grid, fmt.Errorf("invalid character (%c) in row (%s): cells must be digits 0-9", ch, line)
			}
			grid[row][col] = int(ch - '0')
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return grid, fmt.Errorf("error reading grid data: %w", err)
	}
	if row != 9 {
		return grid, fmt.Errorf("invalid grid: expected exactly 9 rows, got %d", row)
	}
	return grid, nil
}

// Render formats a grid for the terminal, with dots for empty cells
// and separators between the 3x3 boxes.
func Render(grid [9][9]int) string {
	var b strings.Builder
	for row := 0; row < 9; row++ {
		if row%3 == 0 && row != 0 {
			b.WriteString("- - - + - - - + - - -\n")
		}
		for col := 0; col < 9; col++ {
			if col%3 == 0 && col != 0 {
				b.WriteString("| ")
			}
			if v := grid[row][col]; v != 0 {
				fmt.Fprintf(&b, "%d ", v)
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
