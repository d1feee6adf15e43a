package search

import (
	"github.com/katalvlaran/gridbench/gridgraph"
)

// noParent marks the start cell in the parent table.
const noParent = -1

// walker encapsulates the mutable state of one BFS or DFS execution.
// BFS and DFS differ only in the frontier and in how many cells one
// sampling round removes: a whole level for BFS, a single cell for DFS.
type walker struct {
	grid     *gridgraph.Grid
	goal     gridgraph.Coord
	opts     Options
	frontier frontier[gridgraph.Coord]
	levelled bool
	visited  []bool
	parent   []int
	res      *Result
}

// BFS runs breadth-first search from start to goal on g.
// The returned path, when found, is a shortest path.
func BFS(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, goal, o, newFIFO[gridgraph.Coord](g.Size()), true)
	w.res.Algorithm = BreadthFirst
	w.run(start)
	return w.res, nil
}

// DFS runs depth-first search from start to goal on g with a single
// explicit stack. The returned path is feasible but not necessarily shortest.
func DFS(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, goal, o, newLIFO[gridgraph.Coord](g.Size()), false)
	w.res.Algorithm = DepthFirst
	w.run(start)
	return w.res, nil
}

func newWalker(g *gridgraph.Grid, goal gridgraph.Coord, o Options, f frontier[gridgraph.Coord], levelled bool) *walker {
	parent := make([]int, g.Size())
	for i := range parent {
		parent[i] = noParent
	}
	return &walker{
		grid:     g,
		goal:     goal,
		opts:     o,
		frontier: f,
		levelled: levelled,
		visited:  make([]bool, g.Size()),
		parent:   parent,
		res:      &Result{},
	}
}

// run seeds the frontier with start and processes it until the goal is
// removed or the frontier empties.
func (w *walker) run(start gridgraph.Coord) {
	w.visited[w.grid.Index(start)] = true
	w.frontier.push(start)

	nbrs := make([]gridgraph.Coord, 0, 4)
	for w.frontier.len() > 0 {
		size := w.frontier.len()
		if size > w.res.MaxFrontier {
			w.res.MaxFrontier = size
		}
		batch := 1
		if w.levelled {
			batch = size
		}
		for i := 0; i < batch; i++ {
			cur := w.frontier.pop()
			w.res.NodesExpanded++
			w.opts.OnExpand(cur)
			if cur == w.goal {
				w.res.Path = reconstruct(w.grid, w.parent, start, w.goal)
				return
			}
			nbrs = w.grid.Neighbors(nbrs[:0], cur)
			for _, n := range nbrs {
				ni := w.grid.Index(n)
				if w.visited[ni] {
					continue
				}
				w.visited[ni] = true
				w.parent[ni] = w.grid.Index(cur)
				w.frontier.push(n)
			}
		}
	}
}

// reconstruct walks parent indices from goal back to start and reverses.
// A chain that ends before start is an invariant violation.
func reconstruct(g *gridgraph.Grid, parent []int, start, goal gridgraph.Coord) []gridgraph.Coord {
	path := []gridgraph.Coord{goal}
	si := g.Index(start)
	for cur := g.Index(goal); cur != si; {
		cur = parent[cur]
		if cur == noParent || len(path) > len(parent) {
			panic("search: broken parent chain from " + goal.String())
		}
		path = append(path, g.Coordinate(cur))
	}
	reverse(path)
	return path
}

func reverse(path []gridgraph.Coord) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
