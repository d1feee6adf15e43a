package gridgraph

import (
	"fmt"
	"math"
	"math/rand"
)

// generator holds the mutable state of one Generate call.
type generator struct {
	rows, cols  int
	start, goal Coord
	opts        GenOptions
	rng         *rand.Rand
	onWalk      []bool
}

// Generate builds a rows×cols Grid in which start and goal are Open and joined
// by at least one Open path. Every other cell becomes a Wall independently
// with probability wallProbability.
//
// Returns ErrEmptyGrid for non-positive dimensions, ErrOutOfBounds when start
// or goal lies outside the grid, ErrInvalidProbability when wallProbability is
// NaN or outside [0,1], ErrOptionViolation for bad options, and
// ErrGenerationFailed when the connecting walk exhausts its budget.
func Generate(rows, cols int, start, goal Coord, wallProbability float64, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if err := ValidateProbability(wallProbability); err != nil {
		return nil, err
	}
	bounds := Grid{Rows: rows, Cols: cols}
	if !bounds.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !bounds.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, rows, cols)
	}
	if o.MaxWalkSteps == 0 {
		o.MaxWalkSteps = walkStepFactor * rows * cols
	}

	gen := &generator{
		rows:   rows,
		cols:   cols,
		start:  start,
		goal:   goal,
		opts:   o,
		rng:    o.Rand,
		onWalk: make([]bool, rows*cols),
	}
	if err := gen.connect(); err != nil {
		return nil, err
	}

	return gen.scatter(wallProbability), nil
}

// ValidateProbability rejects NaN and values outside [0,1].
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	return nil
}

func (g *generator) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// connect runs walk attempts until one reaches the goal or MaxAttempts is spent.
// On success onWalk marks the connecting path.
func (g *generator) connect() error {
	for attempt := 0; attempt < g.opts.MaxAttempts; attempt++ {
		if _, ok := g.walk(); ok {
			return nil
		}
	}
	return fmt.Errorf("%w: no walk from %v to %v within %d attempts of %d steps",
		ErrGenerationFailed, g.start, g.goal, g.opts.MaxAttempts, g.opts.MaxWalkSteps)
}

// walk performs one bounded randomized walk. On success onWalk marks exactly
// the returned cells.
func (g *generator) walk() ([]Coord, bool) {
	for i := range g.onWalk {
		g.onWalk[i] = false
	}
	path := []Coord{g.start}
	g.onWalk[g.index(g.start)] = true
	moves := make([]Coord, 0, 2)

	for steps := 0; path[len(path)-1] != g.goal; steps++ {
		if steps >= g.opts.MaxWalkSteps {
			return nil, false
		}
		cur := path[len(path)-1]
		moves = g.forwardMoves(moves[:0], cur)
		if len(moves) == 0 {
			path = g.backtrack(path)
			continue
		}
		next := moves[g.rng.Intn(len(moves))]
		if g.onWalk[g.index(next)] {
			path = g.backtrack(path)
			continue
		}
		g.onWalk[g.index(next)] = true
		path = append(path, next)
	}
	return path, true
}

// backtrack drops the last walk cell; an emptied walk restarts at start.
func (g *generator) backtrack(path []Coord) []Coord {
	last := path[len(path)-1]
	g.onWalk[g.index(last)] = false
	path = path[:len(path)-1]
	if len(path) == 0 {
		g.onWalk[g.index(g.start)] = true
		path = append(path, g.start)
	}
	return path
}

// forwardMoves appends the in-bounds moves from cur that shrink the Manhattan
// distance to the goal: first along rows, then along columns.
func (g *generator) forwardMoves(dst []Coord, cur Coord) []Coord {
	switch {
	case cur.Row < g.goal.Row:
		dst = append(dst, cur.Add(Down))
	case cur.Row > g.goal.Row:
		dst = append(dst, cur.Add(Up))
	}
	switch {
	case cur.Col < g.goal.Col:
		dst = append(dst, cur.Add(Right))
	case cur.Col > g.goal.Col:
		dst = append(dst, cur.Add(Left))
	}
	n := 0
	for _, m := range dst {
		if m.Row >= 0 && m.Row < g.rows && m.Col >= 0 && m.Col < g.cols {
			dst[n] = m
			n++
		}
	}
	return dst[:n]
}

// scatter lays walls over every cell off the walk.
func (g *generator) scatter(p float64) *Grid {
	cells := allocCells(g.rows, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.onWalk[r*g.cols+c] {
				continue
			}
			if g.rng.Float64() < p {
				cells[r][c] = Wall
			}
		}
	}
	cells[g.start.Row][g.start.Col] = Open
	cells[g.goal.Row][g.goal.Col] = Open

	return &Grid{Rows: g.rows, Cols: g.cols, cells: cells}
}
