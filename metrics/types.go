package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridbench/search"
)

// Sentinel errors for metrics operations.
var (
	// ErrUnknownAlgorithm is returned when recording for an algorithm outside the variant.
	ErrUnknownAlgorithm = errors.New("metrics: unknown algorithm")
	// ErrUnknownField is returned by ParseField for unknown names.
	ErrUnknownField = errors.New("metrics: unknown field")
)

// Field names one numeric column of a Record.
type Field uint8

const (
	// FieldTime is the elapsed search time in seconds.
	FieldTime Field = iota
	// FieldNodes is the number of expanded nodes.
	FieldNodes
	// FieldFrontier is the max frontier size.
	FieldFrontier
	// FieldPathLength is the path length in cells.
	FieldPathLength
	// FieldIterations is the IDS iteration count.
	FieldIterations
)

// Fields lists every Field in display order.
var Fields = [...]Field{FieldTime, FieldNodes, FieldFrontier, FieldPathLength, FieldIterations}

var fieldNames = [...]string{"time", "nodes", "frontier", "path", "iterations"}

// String returns the short field name.
func (f Field) String() string {
	if int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
	return fieldNames[f]
}

// ParseField resolves a short field name such as "nodes".
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range fieldNames {
		if name == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Record is one trial's measurements for one algorithm.
type Record struct {
	Elapsed       time.Duration `json:"elapsed_ns"`
	NodesExpanded int           `json:"nodes_expanded"`
	MaxFrontier   int           `json:"max_frontier"`
	PathLength    int           `json:"path_length"`
	Iterations    int           `json:"iterations,omitempty"`
}

// FromResult converts a search result and its measured duration into a Record.
func FromResult(res *search.Result, elapsed time.Duration) Record {
	return Record{
		Elapsed:       elapsed,
		NodesExpanded: res.NodesExpanded,
		MaxFrontier:   res.MaxFrontier,
		PathLength:    res.PathLength(),
		Iterations:    res.Iterations,
	}
}

// Found reports whether the trial produced a path.
func (r Record) Found() bool {
	return r.PathLength > 0
}

// Value returns field f as a float64. FieldTime is expressed in seconds.
func (r Record) Value(f Field) float64 {
	switch f {
	case FieldTime:
		return r.Elapsed.Seconds()
	case FieldNodes:
		return float64(r.NodesExpanded)
	case FieldFrontier:
		return float64(r.MaxFrontier)
	case FieldPathLength:
		return float64(r.PathLength)
	case FieldIterations:
		return float64(r.Iterations)
	}
	return 0
}

// Summary holds per-algorithm means over the current history.
type Summary struct {
	Algorithm      search.Algorithm `json:"algorithm"`
	Runs           int              `json:"runs"`
	Found          int              `json:"found"`
	MeanSeconds    float64          `json:"mean_seconds"`
	MeanNodes      float64          `json:"mean_nodes"`
	MeanFrontier   float64          `json:"mean_frontier"`
	MeanPathLength float64          `json:"mean_path_length"`
	MeanIterations float64          `json:"mean_iterations,omitempty"`
}
