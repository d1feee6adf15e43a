package metrics_test

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/metrics"
	"github.com/katalvlaran/gridbench/search"
)

func rec(nodes int) metrics.Record {
	return metrics.Record{
		Elapsed:       time.Duration(nodes) * time.Millisecond,
		NodesExpanded: nodes,
		MaxFrontier:   nodes / 2,
		PathLength:    nodes,
	}
}

func TestStore_AverageEmptyIsZero(t *testing.T) {
	s := metrics.NewStore()
	for _, alg := range search.Algorithms {
		for _, f := range metrics.Fields {
			assert.Zero(t, s.Average(alg, f), "%v/%v", alg, f)
		}
	}
	assert.Zero(t, s.Runs())
	assert.Empty(t, s.Labels())
}

func TestStore_Average(t *testing.T) {
	s := metrics.NewStore()
	for _, n := range []int{2, 4, 6} {
		require.NoError(t, s.Record(search.BreadthFirst, rec(n)))
	}
	assert.InDelta(t, 4.0, s.Average(search.BreadthFirst, metrics.FieldNodes), 1e-12)
	assert.InDelta(t, 4.0, s.Average(search.BreadthFirst, metrics.FieldPathLength), 1e-12)
	assert.InDelta(t, 0.004, s.Average(search.BreadthFirst, metrics.FieldTime), 1e-12)
	assert.InDelta(t, 2.0, s.Average(search.BreadthFirst, metrics.FieldFrontier), 1e-12)

	// Other histories stay untouched.
	assert.Zero(t, s.Average(search.DepthFirst, metrics.FieldNodes))
	assert.Zero(t, s.Average(search.Algorithm(9), metrics.FieldNodes))
	assert.Zero(t, s.Average(search.BreadthFirst, metrics.Field(42)))
}

func TestStore_RecordUnknownAlgorithm(t *testing.T) {
	s := metrics.NewStore()
	err := s.Record(search.Algorithm(7), rec(1))
	assert.ErrorIs(t, err, metrics.ErrUnknownAlgorithm)
	assert.Zero(t, s.Runs())
}

func TestStore_LockStepAndReset(t *testing.T) {
	s := metrics.NewStore()
	const trials = 5
	for i := 1; i <= trials; i++ {
		for _, alg := range search.Algorithms {
			require.NoError(t, s.Record(alg, rec(i)))
		}
		for _, alg := range search.Algorithms {
			assert.Equal(t, i, s.Len(alg))
		}
	}
	assert.Equal(t, trials, s.Runs())
	assert.Equal(t, []string{"Run 1", "Run 2", "Run 3", "Run 4", "Run 5"}, s.Labels())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Series(search.IterativeDeepening, metrics.FieldNodes))

	last, ok := s.Last(search.DepthFirst)
	require.True(t, ok)
	assert.Equal(t, 5, last.NodesExpanded)

	s.Reset()
	for _, alg := range search.Algorithms {
		assert.Zero(t, s.Len(alg))
		assert.Empty(t, s.History(alg))
		_, ok := s.Last(alg)
		assert.False(t, ok)
	}
	assert.Empty(t, s.Labels())
}

func TestStore_HistoryIsCopy(t *testing.T) {
	s := metrics.NewStore()
	require.NoError(t, s.Record(search.DepthFirst, rec(3)))
	h := s.History(search.DepthFirst)
	h[0].NodesExpanded = 999
	assert.Equal(t, 3, s.History(search.DepthFirst)[0].NodesExpanded)
}

func TestStore_Summary(t *testing.T) {
	s := metrics.NewStore()
	require.NoError(t, s.Record(search.BreadthFirst, rec(4)))
	require.NoError(t, s.Record(search.BreadthFirst, metrics.Record{NodesExpanded: 8}))
	require.NoError(t, s.Record(search.IterativeDeepening, metrics.Record{NodesExpanded: 10, PathLength: 3, Iterations: 4}))

	sum := s.Summary()
	require.Len(t, sum, len(search.Algorithms))

	assert.Equal(t, search.BreadthFirst, sum[0].Algorithm)
	assert.Equal(t, 2, sum[0].Runs)
	assert.Equal(t, 1, sum[0].Found)
	assert.InDelta(t, 6.0, sum[0].MeanNodes, 1e-12)
	assert.InDelta(t, 2.0, sum[0].MeanPathLength, 1e-12)
	assert.Zero(t, sum[0].MeanIterations)

	assert.Zero(t, sum[1].Runs)

	assert.Equal(t, search.IterativeDeepening, sum[2].Algorithm)
	assert.InDelta(t, 4.0, sum[2].MeanIterations, 1e-12)
}

func TestStore_WriteJSON(t *testing.T) {
	s := metrics.NewStore()
	for _, alg := range search.Algorithms {
		require.NoError(t, s.Record(alg, rec(2)))
	}
	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))

	var snap struct {
		Labels    []string                     `json:"labels"`
		Histories map[string][]json.RawMessage `json:"histories"`
		Summary   []struct {
			Algorithm string  `json:"algorithm"`
			MeanNodes float64 `json:"mean_nodes"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, []string{"Run 1"}, snap.Labels)
	assert.Len(t, snap.Histories, 3)
	assert.Len(t, snap.Histories["IDS"], 1)
	require.Len(t, snap.Summary, 3)
	assert.Equal(t, "BFS", snap.Summary[0].Algorithm)
	assert.InDelta(t, 2.0, snap.Summary[0].MeanNodes, 1e-12)
}

func TestStore_ConcurrentReaders(t *testing.T) {
	s := metrics.NewStore()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = s.Record(search.BreadthFirst, rec(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = s.Average(search.BreadthFirst, metrics.FieldNodes)
			_ = s.Labels()
		}
	}()
	wg.Wait()
	assert.Equal(t, 200, s.Len(search.BreadthFirst))
}

func TestFromResult(t *testing.T) {
	res := &search.Result{
		Algorithm:     search.IterativeDeepening,
		Path:          make([]gridgraph.Coord, 5),
		NodesExpanded: 12,
		MaxFrontier:   3,
		Iterations:    6,
	}
	r := metrics.FromResult(res, 2*time.Second)
	assert.Equal(t, metrics.Record{Elapsed: 2 * time.Second, NodesExpanded: 12, MaxFrontier: 3, PathLength: 5, Iterations: 6}, r)
	assert.True(t, r.Found())
	assert.InDelta(t, 2.0, r.Value(metrics.FieldTime), 1e-12)

	assert.False(t, metrics.FromResult(&search.Result{}, 0).Found())
}

func TestParseField(t *testing.T) {
	for _, f := range metrics.Fields {
		got, err := metrics.ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := metrics.ParseField("speed")
	assert.ErrorIs(t, err, metrics.ErrUnknownField)
	assert.Equal(t, "Field(9)", metrics.Field(9).String())
}
