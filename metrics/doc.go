// Package metrics keeps an append-only, per-algorithm ledger of search trial
// results and answers mean queries over it.
//
// Each Record holds the elapsed search time, nodes expanded, max frontier
// size, path length (0 when no path was found) and, for iterative deepening,
// the number of depth-limit iterations. Records are appended in trial order,
// never mutated, and only removed by an explicit Reset.
//
// A Store is safe for concurrent use: trials append from one goroutine while
// a presentation layer may read histories, series and averages from another.
//
//	s := metrics.NewStore()
//	_ = s.Record(search.BreadthFirst, metrics.FromResult(res, elapsed))
//	mean := s.Average(search.BreadthFirst, metrics.FieldNodes)
//	labels := s.Labels() // "Run 1", "Run 2", ...
package metrics
