package gridgraph

import (
	"fmt"
	"strings"
)

// Runes used by String and ParseGrid.
const (
	RuneOpen = '.'
	RuneWall = '#'
)

// String renders the grid one row per line, '.' for Open and '#' for Wall.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v == Wall {
				sb.WriteByte(RuneWall)
			} else {
				sb.WriteByte(RuneOpen)
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a Grid from text rows. '#' is a Wall; '.', 'S', 'G' and
// '*' are Open. Blank lines and surrounding whitespace are ignored.
func ParseGrid(text string) (*Grid, error) {
	var cells [][]Cell
	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for col, ch := range line {
			switch ch {
			case RuneWall:
				row = append(row, Wall)
			case RuneOpen, 'S', 'G', '*':
				row = append(row, Open)
			default:
				return nil, fmt.Errorf("%w: %q at line %d col %d", ErrInvalidCell, ch, lineNo+1, col+1)
			}
		}
		cells = append(cells, row)
	}
	return NewGrid(cells)
}

// MustParseGrid is like ParseGrid but panics on error. Intended for fixtures.
func MustParseGrid(text string) *Grid {
	g, err := ParseGrid(text)
	if err != nil {
		panic(err)
	}
	return g
}
