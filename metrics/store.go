package metrics

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/katalvlaran/gridbench/search"
)

// Store is an append-only ledger of Records keyed by algorithm.
type Store struct {
	mu      sync.RWMutex
	history [len(search.Algorithms)][]Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Record appends r to the history of alg.
func (s *Store) Record(alg search.Algorithm, r Record) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[alg] = append(s.history[alg], r)
	return nil
}

// Reset empties every history.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.history {
		s.history[i] = nil
	}
}

// Len returns the number of records for alg.
func (s *Store) Len(alg search.Algorithm) int {
	if !alg.Valid() {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history[alg])
}

// Runs returns the number of recorded trials: the longest history.
// Histories grow in lock-step when fed by a trial orchestrator.
func (s *Store) Runs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, h := range s.history {
		if len(h) > n {
			n = len(h)
		}
	}
	return n
}

// History returns a copy of the records for alg in trial order.
func (s *Store) History(alg search.Algorithm) []Record {
	if !alg.Valid() {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.history[alg]))
	copy(out, s.history[alg])
	return out
}

// Last returns the most recent record for alg.
func (s *Store) Last(alg search.Algorithm) (Record, bool) {
	if !alg.Valid() {
		return Record{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.history[alg]
	if len(h) == 0 {
		return Record{}, false
	}
	return h[len(h)-1], true
}

// Series returns field f of every record for alg, in trial order.
func (s *Store) Series(alg search.Algorithm, f Field) []float64 {
	if !alg.Valid() {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]float64, len(s.history[alg]))
	for i, r := range s.history[alg] {
		out[i] = r.Value(f)
	}
	return out
}

// Average returns the arithmetic mean of field f over the history of alg.
// An empty history, unknown algorithm or unknown field yields 0.
func (s *Store) Average(alg search.Algorithm, f Field) float64 {
	if !alg.Valid() {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mean(s.history[alg], f)
}

func mean(h []Record, f Field) float64 {
	if len(h) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range h {
		sum += r.Value(f)
	}
	return sum / float64(len(h))
}

// Labels returns "Run 1" .. "Run N" for the N recorded trials.
func (s *Store) Labels() []string {
	n := s.Runs()
	out := make([]string, n)
	for i := range out {
		out[i] = "Run " + strconv.Itoa(i+1)
	}
	return out
}

// Summary returns per-algorithm means in Algorithms order.
func (s *Store) Summary() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, 0, len(search.Algorithms))
	for _, alg := range search.Algorithms {
		h := s.history[alg]
		found := 0
		for _, r := range h {
			if r.Found() {
				found++
			}
		}
		sum := Summary{
			Algorithm:      alg,
			Runs:           len(h),
			Found:          found,
			MeanSeconds:    mean(h, FieldTime),
			MeanNodes:      mean(h, FieldNodes),
			MeanFrontier:   mean(h, FieldFrontier),
			MeanPathLength: mean(h, FieldPathLength),
		}
		if alg == search.IterativeDeepening {
			sum.MeanIterations = mean(h, FieldIterations)
		}
		out = append(out, sum)
	}
	return out
}
