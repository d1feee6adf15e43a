// Package trial drives repeated search comparisons.
//
// An Orchestrator owns the session state for one comparison run: the grid
// shape, a random source, a metrics.Store and the algorithm currently
// selected for display. Each RunTrial call
//
//  1. generates a fresh obstacle grid with gridgraph.Generate,
//  2. runs BFS, DFS and IDS on it in that order, timing each search alone,
//  3. appends one metrics.Record per algorithm to the store as soon as that
//     search returns,
//  4. returns an Outcome holding the grid, every result and the path of the
//     selected algorithm (nil when that algorithm found none).
//
// All three algorithms run on every trial regardless of the selection, so
// store histories grow in lock-step.
//
// Trials are synchronous. RunTrials checks the context between trials but a
// running search is never interrupted.
//
// Randomness and time are injectable through WithRand, WithSeed and
// WithClock so trials are reproducible in tests.
package trial
