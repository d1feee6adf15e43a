// Package search defines the algorithm variant, options, results and
// sentinel errors shared by all strategies.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridbench/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrBlockedEndpoint is returned when start or goal is a wall.
	ErrBlockedEndpoint = errors.New("search: endpoint is a wall")

	// ErrUnknownAlgorithm is returned by Run and ParseAlgorithm for values outside the variant.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects one of the three search strategies.
type Algorithm uint8

const (
	// BreadthFirst is level-by-level FIFO search.
	BreadthFirst Algorithm = iota
	// DepthFirst is single-stack LIFO search.
	DepthFirst
	// IterativeDeepening is repeated depth-limited LIFO search.
	IterativeDeepening
)

// Algorithms lists every variant in trial order.
var Algorithms = [...]Algorithm{BreadthFirst, DepthFirst, IterativeDeepening}

var algorithmNames = [...]string{"BFS", "DFS", "IDS"}

// Valid reports whether a is one of the defined variants.
func (a Algorithm) Valid() bool {
	return int(a) < len(algorithmNames)
}

// String returns the short name: "BFS", "DFS" or "IDS".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm accepts short names ("bfs") and long names
// ("breadth-first", "iterative-deepening"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "ids", "iterative-deepening", "iterativedeepening":
		return IterativeDeepening, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds hooks and limits for a search run.
type Options struct {
	// OnExpand is called for each cell removed from the frontier.
	OnExpand func(c gridgraph.Coord)

	// OnIteration is called after each IDS iteration with its depth limit
	// and the cells it expanded.
	OnIteration func(limit, expanded int)

	// MaxDepthLimit is the last IDS depth limit. Zero selects R·C.
	MaxDepthLimit int

	err error
}

// DefaultOptions returns Options with no-op hooks and the R·C depth sweep.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(gridgraph.Coord) {},
		OnIteration:   func(int, int) {},
		MaxDepthLimit: 0,
	}
}

// WithOnExpand registers a callback run for every expanded cell.
func WithOnExpand(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnIteration registers a callback run after each IDS iteration.
func WithOnIteration(fn func(limit, expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithMaxDepthLimit sets the last IDS depth limit.
//
//	n > 0:  sweep limits 0..n
//	n == 0: sweep limits 0..R·C
//	n < 0:  ErrOptionViolation
func WithMaxDepthLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepthLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepthLimit = n
	}
}

// Result is the uniform outcome of a search.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm
	// Path from start to goal inclusive; nil when the goal was not reached.
	Path []gridgraph.Coord
	// NodesExpanded counts cells removed from the frontier.
	NodesExpanded int
	// MaxFrontier is the largest sampled frontier size.
	MaxFrontier int
	// Iterations is the number of depth limits tried (IDS only).
	Iterations int
}

// Found reports whether a path was found.
func (r *Result) Found() bool {
	return r.Path != nil
}

// PathLength returns the number of cells on the path, or 0 if none was found.
func (r *Result) PathLength() int {
	return len(r.Path)
}
