package metrics

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/gridbench/search"
)

// Snapshot is a point-in-time copy of a Store, shaped for charting:
// Labels[i] names the i-th entry of every History.
type Snapshot struct {
	Labels    []string            `json:"labels"`
	Summary   []Summary           `json:"summary"`
	Histories map[string][]Record `json:"histories"`
}

// Snapshot copies the current state of the store.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Labels:    s.Labels(),
		Summary:   s.Summary(),
		Histories: make(map[string][]Record, len(search.Algorithms)),
	}
	for _, alg := range search.Algorithms {
		snap.Histories[alg.String()] = s.History(alg)
	}
	return snap
}

// WriteJSON encodes a Snapshot of the store to w as indented JSON.
func (s *Store) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Snapshot())
}
