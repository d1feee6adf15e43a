// Package search runs uninformed searches from a start cell to a goal cell on
// a gridgraph.Grid and reports uniform instrumentation for each run.
//
// What
//
//   - BFS: FIFO frontier processed level by level; returns a shortest path.
//   - DFS: single explicit LIFO stack; returns a feasible path whose shape
//     depends on the neighbor push order.
//   - IDS: repeated depth-limited stack searches with limits 0..R·C; returns a
//     shortest path and the number of depth-limit iterations performed.
//   - Run dispatches on the closed Algorithm variant.
//
// Every strategy expands neighbors in the fixed order up, down, left, right,
// marks cells visited when they enter the frontier, and tests for the goal
// when a cell leaves it. Each returns a Result holding the path (nil when the
// goal is unreachable), NodesExpanded and MaxFrontier; IDS also fills
// Iterations.
//
// Instrumentation
//
//   - NodesExpanded counts cells removed from the frontier, goal included.
//   - MaxFrontier is sampled at the start of each BFS level, before each DFS
//     pop, and before each pop of every IDS iteration.
//   - IDS totals accumulate over all iterations up to and including the
//     successful one.
//
// Depth limits (IDS)
//
//	A node's depth is the length of its parent chain, counting the node
//	itself, so the root has depth 1. A node's children are pushed only when
//	its depth is strictly below the current limit. Limits 0 and 1 therefore
//	pop only the start cell, and a goal d moves away is first reached with
//	limit d+1, in iteration d+2.
//
//	Within an iteration a cell already on the tree is pushed again only when
//	it is reached through a shorter chain. Plain visited marking would let a
//	long detour claim a cell and hide a shorter route under the same limit.
//	Re-pushed cells are expanded again, so IDS NodesExpanded and MaxFrontier
//	can be higher than a plain visited-set IDS would report on the same grid.
//
// Options
//
//   - WithOnExpand(fn):        called for every expanded cell.
//   - WithOnIteration(fn):     called after each IDS iteration.
//   - WithMaxDepthLimit(n):    last IDS depth limit (default R·C).
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrOutOfBounds        if start or goal lies outside the grid.
//   - ErrBlockedEndpoint    if start or goal is a wall.
//   - ErrUnknownAlgorithm   if Run receives an Algorithm outside the variant.
//   - ErrOptionViolation    for invalid options.
//
// An unreachable goal is not an error: the Result has a nil Path.
//
// Complexity (N = R·C)
//
//   - BFS, DFS: O(N) time and memory.
//   - IDS:      O(N²) time in the worst case, O(N) memory per iteration.
package search
