// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 3×4 grid.
//
// Grid ('.' = open, '#' = wall):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	g := MustParseGrid(`
		#..#
		..##
		##..
	`)

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals checks that corner-touching cells stay apart.
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g := MustParseGrid(`
		.#.
		#.#
		.#.
	`)
	if n := len(g.ConnectedComponents()); n != 5 {
		t.Errorf("got %d components; want 5", n)
	}
}

// TestConnectedComponents_AllWalls yields nothing.
func TestConnectedComponents_AllWalls(t *testing.T) {
	g := MustParseGrid("##\n##")
	if comps := g.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %v; want none", comps)
	}
}

// TestConnected covers reachable, blocked and wall endpoints.
func TestConnected(t *testing.T) {
	g := MustParseGrid(`
		..#.
		#.#.
		#...
	`)
	cases := []struct {
		a, b Coord
		want bool
	}{
		{Coord{0, 0}, Coord{0, 3}, true},
		{Coord{0, 0}, Coord{0, 0}, true},
		{Coord{0, 0}, Coord{0, 2}, false},
		{Coord{1, 0}, Coord{2, 3}, false},
	}
	for _, tc := range cases {
		if got := g.Connected(tc.a, tc.b); got != tc.want {
			t.Errorf("Connected(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}

	split := MustParseGrid(".#.")
	if split.Connected(Coord{0, 0}, Coord{0, 2}) {
		t.Error("Connected across a wall column = true")
	}
}
