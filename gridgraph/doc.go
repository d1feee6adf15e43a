// Package gridgraph models a 2D obstacle map as a 4-connected graph and
// generates random maps that are guaranteed to connect a start and a goal cell.
//
// What:
//
//   - Grid wraps an immutable R×C matrix of Open/Wall cells.
//   - Generate builds a Grid whose start and goal are joined by at least one
//     Open path, then scatters walls over every other cell with a given
//     probability.
//   - Neighbors enumerates the 4-connected Open neighbors of a cell in the
//     fixed order up, down, left, right.
//   - ConnectedComponents groups Open cells into contiguous regions.
//
// Why:
//
//   - Benchmark maps for uninformed search: every map is solvable, so the
//     search strategies can be compared on time, expansions and frontier size.
//   - Reproducible trials: the random source is injectable (WithRand, WithSeed).
//
// Generation:
//
//  1. Randomized walk from start toward goal. At each step the candidate moves
//     are the in-bounds orthogonal moves that reduce the Manhattan distance to
//     the goal; one is chosen uniformly at random.
//  2. A move onto a cell already on the walk discards the last walk cell instead.
//  3. No candidate move ⇒ backtrack one cell; an emptied walk restarts at start.
//  4. The walk is capped at MaxWalkSteps; a capped walk restarts, and after
//     MaxAttempts restarts Generate fails with ErrGenerationFailed.
//  5. Every cell off the walk is a Wall with probability wallProbability.
//     Start and goal are always Open.
//
// Complexity:
//
//   - Generate:            O(R×C + MaxWalkSteps×MaxAttempts), Memory: O(R×C).
//   - ConnectedComponents: O(R×C×4), Memory: O(R×C).
//   - Connected:           O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:          zero rows or zero columns.
//   - ErrNonRectangular:     rows have differing lengths.
//   - ErrOutOfBounds:        start or goal outside the grid.
//   - ErrInvalidProbability: wall probability is NaN or outside [0,1].
//   - ErrGenerationFailed:   the connecting walk exhausted its step budget.
//   - ErrOptionViolation:    an Option received an invalid value.
//   - ErrInvalidCell:        ParseGrid met an unknown cell rune.
package gridgraph
