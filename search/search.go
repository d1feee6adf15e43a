package search

import (
	"fmt"

	"github.com/katalvlaran/gridbench/gridgraph"
)

// Run dispatches to the strategy selected by alg.
// Returns ErrUnknownAlgorithm for values outside the variant.
func Run(alg Algorithm, g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	switch alg {
	case BreadthFirst:
		return BFS(g, start, goal, opts...)
	case DepthFirst:
		return DFS(g, start, goal, opts...)
	case IterativeDeepening:
		return IDS(g, start, goal, opts...)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
}

// prepare applies options and validates the grid and both endpoints.
func prepare(g *gridgraph.Grid, start, goal gridgraph.Coord, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGridNil
	}
	for _, c := range [...]gridgraph.Coord{start, goal} {
		if !g.InBounds(c) {
			return o, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
		}
		if !g.IsOpen(c) {
			return o, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}
	return o, nil
}
