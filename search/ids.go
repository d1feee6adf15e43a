package search

import (
	"github.com/katalvlaran/gridbench/gridgraph"
)

// node is one entry of the per-iteration search tree. Nodes are addressed by
// their arena index; parent is the index of the node they were reached from,
// or noParent for the root. Nodes never reference their children.
type node struct {
	at     gridgraph.Coord
	parent int
	depth  int
}

// deepener holds the state reused across IDS iterations. Arena, stack and
// best-depth table are reset at the start of every iteration.
type deepener struct {
	grid  *gridgraph.Grid
	start gridgraph.Coord
	goal  gridgraph.Coord
	opts  Options
	arena []node
	stack *lifo[int]
	best  []int
	res   *Result
}

// IDS runs iterative-deepening search from start to goal on g, sweeping depth
// limits 0..MaxDepthLimit (R·C by default). The first successful limit yields
// a shortest path. Iterations reports the successful iteration, or the number
// of limits tried when the goal is unreachable.
func IDS(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	maxLimit := o.MaxDepthLimit
	if maxLimit == 0 {
		maxLimit = g.Size()
	}
	d := &deepener{
		grid:  g,
		start: start,
		goal:  goal,
		opts:  o,
		arena: make([]node, 0, g.Size()),
		stack: newLIFO[int](g.Size()),
		best:  make([]int, g.Size()),
		res:   &Result{Algorithm: IterativeDeepening},
	}
	for limit := 0; limit <= maxLimit; limit++ {
		d.res.Iterations++
		found, expanded := d.iterate(limit)
		d.opts.OnIteration(limit, expanded)
		if found >= 0 {
			d.res.Path = d.pathTo(found)
			break
		}
	}
	return d.res, nil
}

// iterate runs one depth-limited stack search. It returns the arena index of
// the goal node (or -1) and the number of nodes it expanded.
func (d *deepener) iterate(limit int) (int, int) {
	d.arena = d.arena[:0]
	d.stack.reset()
	for i := range d.best {
		d.best[i] = 0
	}

	d.push(d.start, noParent, 1)
	expanded := 0
	nbrs := make([]gridgraph.Coord, 0, 4)
	for d.stack.len() > 0 {
		if size := d.stack.len(); size > d.res.MaxFrontier {
			d.res.MaxFrontier = size
		}
		idx := d.stack.pop()
		cur := d.arena[idx]
		expanded++
		d.res.NodesExpanded++
		d.opts.OnExpand(cur.at)
		if cur.at == d.goal {
			return idx, expanded
		}
		if cur.depth >= limit {
			continue
		}
		nbrs = d.grid.Neighbors(nbrs[:0], cur.at)
		for _, n := range nbrs {
			b := d.best[d.grid.Index(n)]
			if b != 0 && b <= cur.depth+1 {
				continue
			}
			d.push(n, idx, cur.depth+1)
		}
	}
	return -1, expanded
}

// push appends a node to the arena, records its depth as the best one for
// its cell in this iteration, and places it on the stack.
func (d *deepener) push(at gridgraph.Coord, parent, depth int) {
	d.best[d.grid.Index(at)] = depth
	d.arena = append(d.arena, node{at: at, parent: parent, depth: depth})
	d.stack.push(len(d.arena) - 1)
}

// pathTo follows parent indices from the arena node idx to the root.
// The chain must end at the start cell after exactly depth nodes.
func (d *deepener) pathTo(idx int) []gridgraph.Coord {
	n := d.arena[idx]
	path := make([]gridgraph.Coord, 0, n.depth)
	for i := idx; i != noParent; i = d.arena[i].parent {
		path = append(path, d.arena[i].at)
	}
	if len(path) != n.depth || path[len(path)-1] != d.start {
		panic("search: broken node chain from " + d.goal.String())
	}
	reverse(path)
	return path
}
