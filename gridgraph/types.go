// Package gridgraph defines core types, options, and sentinel errors
// for grid maps and their generation.
package gridgraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrInvalidProbability indicates a wall probability outside [0,1].
	ErrInvalidProbability = errors.New("gridgraph: wall probability must be within [0,1]")
	// ErrGenerationFailed indicates the connecting walk did not reach the goal within budget.
	ErrGenerationFailed = errors.New("gridgraph: generation failed")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
	// ErrInvalidCell indicates an unknown rune in a textual grid.
	ErrInvalidCell = errors.New("gridgraph: invalid cell rune")
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Open cells are traversable.
	Open Cell = iota
	// Wall cells block movement.
	Wall
)

// String returns "open" or "wall".
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "open"
}

// Coord is an integer (row, col) position.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Unit moves in expansion priority order: up, down, left, right.
// Search strategies depend on this order for reproducible paths.
var (
	Up    = Coord{Row: -1, Col: 0}
	Down  = Coord{Row: 1, Col: 0}
	Left  = Coord{Row: 0, Col: -1}
	Right = Coord{Row: 0, Col: 1}
)

// neighborOffsets is the fixed 4-connected expansion order.
var neighborOffsets = [4]Coord{Up, Down, Left, Right}

// Default generation limits.
const (
	// DefaultMaxAttempts bounds how many times the connecting walk may restart.
	DefaultMaxAttempts = 16
	// walkStepFactor scales R×C into the default per-attempt step budget.
	walkStepFactor = 8
	// defaultSeed is used when no random source is supplied.
	defaultSeed int64 = 1
)

// Option configures Generate via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*GenOptions)

// GenOptions holds the tunables for Generate.
type GenOptions struct {
	// Rand is the random source for the walk and the wall scatter.
	Rand *rand.Rand

	// MaxWalkSteps caps the moves of one walk attempt. Zero selects 8×R×C.
	MaxWalkSteps int

	// MaxAttempts caps the number of walk attempts before ErrGenerationFailed.
	MaxAttempts int

	err error
}

// DefaultOptions returns GenOptions with a deterministic source seeded with 1,
// an automatic step budget and DefaultMaxAttempts.
func DefaultOptions() GenOptions {
	return GenOptions{
		Rand:         rand.New(rand.NewSource(defaultSeed)),
		MaxWalkSteps: 0,
		MaxAttempts:  DefaultMaxAttempts,
	}
}

// WithRand injects the random source. A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *GenOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed seeds a fresh deterministic random source.
func WithSeed(seed int64) Option {
	return func(o *GenOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWalkSteps caps the moves of one walk attempt.
//
//	n > 0:  explicit budget
//	n == 0: automatic budget (8×R×C)
//	n < 0:  ErrOptionViolation
func WithMaxWalkSteps(n int) Option {
	return func(o *GenOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxWalkSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWalkSteps = n
	}
}

// WithMaxAttempts caps the number of walk restarts. n must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *GenOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}
