package gridgraph

// ConnectedComponents finds all contiguous regions of Open cells under
// 4-connectivity. Returns a slice of components; each component is a slice of
// row-major cell indices in discovery order.
//
// To convert an index back to a Coord, use Coordinate(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Size())
	var comps [][]int

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r][c] == Wall {
				continue
			}
			i0 := g.Index(Coord{Row: r, Col: c})
			if seen[i0] {
				continue
			}
			seen[i0] = true
			comps = append(comps, g.flood(i0, seen))
		}
	}
	return comps
}

// Connected reports whether an Open path joins a and b.
// Both endpoints must be Open; a == b is trivially connected.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return false
	}
	seen := make([]bool, g.Size())
	ia, ib := g.Index(a), g.Index(b)
	seen[ia] = true
	for _, i := range g.flood(ia, seen) {
		if i == ib {
			return true
		}
	}
	return false
}

// flood collects the component containing the already-marked index i0.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	var buf [4]Coord
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, v := range g.Neighbors(buf[:0], u) {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
