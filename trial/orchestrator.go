package trial

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/metrics"
	"github.com/katalvlaran/gridbench/search"
)

// Orchestrator runs trials against one metrics store.
type Orchestrator struct {
	cfg       Config
	store     *metrics.Store
	rng       *rand.Rand
	log       *log.Logger
	now       Clock
	session   uuid.UUID
	runSearch func(search.Algorithm, *gridgraph.Grid, gridgraph.Coord, gridgraph.Coord, ...search.Option) (*search.Result, error)

	// runMu serializes whole trials with Reset; trials is guarded by it.
	runMu  sync.Mutex
	trials int

	mu       sync.Mutex
	selected search.Algorithm
	last     *Outcome
}

// New validates cfg and returns an Orchestrator writing into store.
func New(cfg Config, store *metrics.Store, opts ...Option) (*Orchestrator, error) {
	if store == nil {
		return nil, ErrStoreNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	id := uuid.New()
	return &Orchestrator{
		cfg:       cfg,
		store:     store,
		rng:       o.Rand,
		log:       o.Logger.With("session", id.String()[:8]),
		now:       o.Clock,
		session:   id,
		runSearch: search.Run,
		selected:  cfg.Selected,
	}, nil
}

// Session returns the identifier attached to every log line of this orchestrator.
func (o *Orchestrator) Session() uuid.UUID {
	return o.session
}

// Config returns the session configuration.
func (o *Orchestrator) Config() Config {
	return o.cfg
}

// Store returns the metrics store trials are recorded into.
func (o *Orchestrator) Store() *metrics.Store {
	return o.store
}

// RunTrial generates a grid with wall probability p, runs every algorithm on
// it and records the results. An invalid p is rejected before anything is
// generated or recorded.
func (o *Orchestrator) RunTrial(ctx context.Context, p float64) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := gridgraph.ValidateProbability(p); err != nil {
		return nil, err
	}

	o.runMu.Lock()
	defer o.runMu.Unlock()

	genOpts := []gridgraph.Option{gridgraph.WithRand(o.rng)}
	if o.cfg.MaxWalkSteps > 0 {
		genOpts = append(genOpts, gridgraph.WithMaxWalkSteps(o.cfg.MaxWalkSteps))
	}
	if o.cfg.MaxAttempts > 0 {
		genOpts = append(genOpts, gridgraph.WithMaxAttempts(o.cfg.MaxAttempts))
	}
	g, err := gridgraph.Generate(o.cfg.Rows, o.cfg.Cols, o.cfg.Start, o.cfg.Goal, p, genOpts...)
	if err != nil {
		o.log.Error("grid generation failed", "p", p, "err", err)
		return nil, fmt.Errorf("trial: generate: %w", err)
	}

	out := &Outcome{
		Trial:    o.trials + 1,
		Grid:     g,
		Results:  make(map[search.Algorithm]*search.Result, len(search.Algorithms)),
		Paths:    make(map[search.Algorithm][]gridgraph.Coord, len(search.Algorithms)),
		Elapsed:  make(map[search.Algorithm]time.Duration, len(search.Algorithms)),
		Selected: o.Selected(),
	}

	o.log.Debug("trial started", "trial", out.Trial, "p", p, "walls", g.WallCount())
	for _, alg := range search.Algorithms {
		res, elapsed, err := o.measure(alg, g)
		if err != nil {
			return nil, fmt.Errorf("trial: %v: %w", alg, err)
		}
		if err := o.store.Record(alg, metrics.FromResult(res, elapsed)); err != nil {
			return nil, err
		}
		out.Results[alg] = res
		out.Paths[alg] = res.Path
		out.Elapsed[alg] = elapsed
		o.log.Debug("search finished",
			"trial", out.Trial,
			"algorithm", alg,
			"nodes", res.NodesExpanded,
			"frontier", res.MaxFrontier,
			"path", res.PathLength(),
			"elapsed", elapsed,
		)
	}
	out.SelectedPath = out.Paths[out.Selected]
	o.trials = out.Trial

	o.mu.Lock()
	o.last = out
	o.mu.Unlock()

	o.log.Info("trial finished",
		"trial", out.Trial,
		"p", p,
		"found", out.Results[search.BreadthFirst].Found(),
		"shortest", out.Results[search.BreadthFirst].PathLength(),
	)
	return out, nil
}

// measure times a single search. Only the search call sits between the two
// clock readings.
func (o *Orchestrator) measure(alg search.Algorithm, g *gridgraph.Grid) (*search.Result, time.Duration, error) {
	t0 := o.now()
	res, err := o.runSearch(alg, g, o.cfg.Start, o.cfg.Goal)
	elapsed := o.now().Sub(t0)
	return res, elapsed, err
}

// RunTrials runs n trials with the same wall probability, stopping early if
// ctx is cancelled between trials. It returns the outcomes completed so far.
func (o *Orchestrator) RunTrials(ctx context.Context, n int, p float64) ([]*Outcome, error) {
	out := make([]*Outcome, 0, max(n, 0))
	for i := 0; i < n; i++ {
		res, err := o.RunTrial(ctx, p)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Select changes the algorithm whose path is reported for display. It does
// not change which algorithms run.
func (o *Orchestrator) Select(alg search.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %v", search.ErrUnknownAlgorithm, alg)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selected = alg
	return nil
}

// Selected returns the current display selection.
func (o *Orchestrator) Selected() search.Algorithm {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.selected
}

// SelectedPath returns the latest trial's path for the current selection.
// It is nil before the first trial and when that algorithm found no path;
// a path from an earlier grid is never returned.
func (o *Orchestrator) SelectedPath() []gridgraph.Coord {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.last == nil {
		return nil
	}
	p := o.last.Paths[o.selected]
	if p == nil {
		return nil
	}
	return append([]gridgraph.Coord(nil), p...)
}

// Last returns the most recent Outcome, or nil.
func (o *Orchestrator) Last() *Outcome {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// Reset clears the metrics store and restarts trial numbering. The last
// grid stays available for display. A Reset issued while a trial runs waits
// for that trial to finish, so histories never diverge in length.
func (o *Orchestrator) Reset() {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	o.store.Reset()
	o.trials = 0
	o.log.Info("metrics reset")
}
