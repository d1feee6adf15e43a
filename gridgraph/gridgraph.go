// Package gridgraph provides an immutable R×C obstacle grid viewed as a
// 4-connected graph. Open cells are vertices; orthogonally adjacent Open
// cells share an edge.
package gridgraph

// Grid is an immutable R×C matrix of cells. Rows and Cols define its
// dimensions; cells[r][c] holds the state of (r,c).
type Grid struct {
	Rows, Cols int
	cells      [][]Cell
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cp := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cp[r] = make([]Cell, cols)
		copy(cp[r], cells[r])
	}

	return &Grid{Rows: rows, Cols: cols, cells: cp}, nil
}

// NewOpenGrid returns a rows×cols grid with every cell Open.
func NewOpenGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{Rows: rows, Cols: cols, cells: allocCells(rows, cols)}, nil
}

func allocCells(rows, cols int) [][]Cell {
	backing := make([]Cell, rows*cols)
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return cells
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Cell returns the state at c. Out-of-bounds coordinates read as Wall.
func (g *Grid) Cell(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row][c.Col]
}

// IsOpen reports whether c is inside the grid and Open.
// Complexity: O(1).
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == Open
}

// NeighborOffsets returns the unit moves in expansion order: up, down, left, right.
func (g *Grid) NeighborOffsets() []Coord {
	return neighborOffsets[:]
}

// Neighbors appends to dst the Open neighbors of c in expansion order and
// returns the extended slice. Passing a reused dst avoids allocation.
func (g *Grid) Neighbors(dst []Coord, c Coord) []Coord {
	for _, d := range neighborOffsets {
		n := c.Add(d)
		if g.IsOpen(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Size returns R×C.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// WallCount returns the number of Wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == Wall {
				n++
			}
		}
	}
	return n
}

// Density returns the fraction of cells that are walls.
func (g *Grid) Density() float64 {
	return float64(g.WallCount()) / float64(g.Size())
}

// Cells returns a deep copy of the cell matrix.
func (g *Grid) Cells() [][]Cell {
	out := allocCells(g.Rows, g.Cols)
	for r := range g.cells {
		copy(out[r], g.cells[r])
	}
	return out
}
