package gridgraph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(rows, cols int, start, goal Coord, seed int64) *generator {
	o := DefaultOptions()
	o.MaxWalkSteps = walkStepFactor * rows * cols
	return &generator{
		rows: rows, cols: cols,
		start: start, goal: goal,
		opts:   o,
		rng:    rand.New(rand.NewSource(seed)),
		onWalk: make([]bool, rows*cols),
	}
}

// The connecting walk is a simple 4-adjacent chain from start to goal whose
// cells are exactly the ones flagged in onWalk.
func TestWalk_IsAdjacentChain(t *testing.T) {
	start, goal := Coord{Row: 4, Col: 0}, Coord{Row: 0, Col: 9}
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGenerator(5, 10, start, goal, seed)
		path, ok := g.walk()
		require.True(t, ok)
		require.Equal(t, start, path[0])
		require.Equal(t, goal, path[len(path)-1])
		assert.Len(t, path, start.Manhattan(goal)+1)

		seen := map[Coord]bool{}
		for i, c := range path {
			assert.False(t, seen[c], "cell %v repeated", c)
			seen[c] = true
			assert.True(t, g.onWalk[g.index(c)])
			if i > 0 {
				assert.Equal(t, 1, path[i-1].Manhattan(c), "step %d not adjacent", i)
			}
		}
		flagged := 0
		for _, f := range g.onWalk {
			if f {
				flagged++
			}
		}
		assert.Equal(t, len(path), flagged)
	}
}

func TestForwardMoves(t *testing.T) {
	g := newTestGenerator(3, 3, Coord{0, 0}, Coord{2, 2}, 1)
	assert.Equal(t, []Coord{{1, 0}, {0, 1}}, g.forwardMoves(nil, Coord{0, 0}))
	assert.Equal(t, []Coord{{2, 2}}, g.forwardMoves(nil, Coord{2, 1}))
	assert.Empty(t, g.forwardMoves(nil, Coord{2, 2}))

	rev := newTestGenerator(3, 3, Coord{2, 2}, Coord{0, 0}, 1)
	assert.Equal(t, []Coord{{1, 2}, {2, 1}}, rev.forwardMoves(nil, Coord{2, 2}))
}

func TestBacktrack_RestartsAtStart(t *testing.T) {
	g := newTestGenerator(3, 3, Coord{0, 0}, Coord{2, 2}, 1)
	g.onWalk[g.index(Coord{0, 0})] = true
	path := g.backtrack([]Coord{{0, 0}})
	assert.Equal(t, []Coord{{0, 0}}, path)
	assert.True(t, g.onWalk[0])

	g.onWalk[g.index(Coord{0, 1})] = true
	path = g.backtrack([]Coord{{0, 0}, {0, 1}})
	assert.Equal(t, []Coord{{0, 0}}, path)
	assert.False(t, g.onWalk[g.index(Coord{0, 1})])
}
