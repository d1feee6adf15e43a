package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridbench/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	o, w := gridgraph.Open, gridgraph.Wall
	cases := []struct {
		name  string
		cells [][]gridgraph.Cell
		err   error
	}{
		{"EmptyRows", [][]gridgraph.Cell{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.Cell{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.Cell{{o, w}, {o}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the Grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]gridgraph.Cell{{gridgraph.Open, gridgraph.Open}}
	g, err := gridgraph.NewGrid(in)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	in[0][1] = gridgraph.Wall
	if !g.IsOpen(gridgraph.Coord{Row: 0, Col: 1}) {
		t.Error("grid changed after input mutation")
	}
	out := g.Cells()
	out[0][0] = gridgraph.Wall
	if !g.IsOpen(gridgraph.Coord{Row: 0, Col: 0}) {
		t.Error("grid changed after Cells() mutation")
	}
}

// TestInBounds checks InBounds and IsOpen on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g := gridgraph.MustParseGrid(`
		.#.
		#..
	`)
	valid := []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []gridgraph.Coord{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if g.Cell(c) != gridgraph.Wall {
			t.Errorf("Cell(%v) out of bounds = %v; want wall", c, g.Cell(c))
		}
	}
	if g.IsOpen(gridgraph.Coord{Row: 0, Col: 1}) {
		t.Error("IsOpen on wall = true")
	}
	if got := g.WallCount(); got != 2 {
		t.Errorf("WallCount = %d; want 2", got)
	}
}

//----------------------------------------------------------------------------//
// Neighbors and indexing
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed up, down, left, right order and wall skipping.
func TestNeighbors_Order(t *testing.T) {
	g := gridgraph.MustParseGrid(`
		...
		...
		.#.
	`)
	center := gridgraph.Coord{Row: 1, Col: 1}
	got := g.Neighbors(nil, center)
	want := []gridgraph.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(%v) = %v; want %v", center, got, want)
	}

	offs := g.NeighborOffsets()
	wantOffs := []gridgraph.Coord{gridgraph.Up, gridgraph.Down, gridgraph.Left, gridgraph.Right}
	if !reflect.DeepEqual(offs, wantOffs) {
		t.Errorf("NeighborOffsets = %v; want %v", offs, wantOffs)
	}
}

// TestIndexCoordinate round-trips every cell of a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.NewOpenGrid(3, 4)
	if err != nil {
		t.Fatalf("NewOpenGrid error: %v", err)
	}
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if g.Index(c) != i {
			t.Errorf("Index(Coordinate(%d)) = %d", i, g.Index(c))
		}
	}
	if c := g.Coordinate(5); c != (gridgraph.Coord{Row: 1, Col: 1}) {
		t.Errorf("Coordinate(5) = %v; want (1,1)", c)
	}
}

//----------------------------------------------------------------------------//
// Text form
//----------------------------------------------------------------------------//

// TestParseGrid_RoundTrip checks that String reproduces parsed text.
func TestParseGrid_RoundTrip(t *testing.T) {
	text := "S.#\n.##\n..G"
	g, err := gridgraph.ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid error: %v", err)
	}
	if got, want := g.String(), "..#\n.##\n..."; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestParseGrid_InvalidRune rejects unknown cell runes.
func TestParseGrid_InvalidRune(t *testing.T) {
	if _, err := gridgraph.ParseGrid("..x"); !errors.Is(err, gridgraph.ErrInvalidCell) {
		t.Errorf("ParseGrid error = %v; want ErrInvalidCell", err)
	}
	if _, err := gridgraph.ParseGrid("\n\n"); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("ParseGrid(blank) error = %v; want ErrEmptyGrid", err)
	}
}

// TestCoord_Manhattan checks the distance helper used by the generator.
func TestCoord_Manhattan(t *testing.T) {
	a := gridgraph.Coord{Row: 0, Col: 0}
	b := gridgraph.Coord{Row: 3, Col: -2}
	if d := a.Manhattan(b); d != 5 {
		t.Errorf("Manhattan = %d; want 5", d)
	}
	if s := b.String(); s != "(3,-2)" {
		t.Errorf("String = %q", s)
	}
}
