package trial

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/search"
)

// Sentinel errors for orchestrator construction and use.
var (
	// ErrStoreNil is returned by New when no metrics store is supplied.
	ErrStoreNil = errors.New("trial: metrics store is nil")
	// ErrInvalidConfig wraps grid shape and endpoint problems found by New.
	ErrInvalidConfig = errors.New("trial: invalid configuration")
	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("trial: option violation")
)

// Config fixes the grid shape and endpoints for a session.
type Config struct {
	Rows  int
	Cols  int
	Start gridgraph.Coord
	Goal  gridgraph.Coord

	// MaxWalkSteps and MaxAttempts bound the generator; zero keeps its defaults.
	MaxWalkSteps int
	MaxAttempts  int

	// Selected is the algorithm whose path is reported for display.
	Selected search.Algorithm
}

// DefaultConfig returns a 20×20 session from the top-left to the bottom-right corner.
func DefaultConfig() Config {
	return Config{
		Rows:     20,
		Cols:     20,
		Start:    gridgraph.Coord{Row: 0, Col: 0},
		Goal:     gridgraph.Coord{Row: 19, Col: 19},
		Selected: search.BreadthFirst,
	}
}

// Validate checks the grid shape, endpoints and selection.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	for _, p := range []gridgraph.Coord{c.Start, c.Goal} {
		if p.Row < 0 || p.Row >= c.Rows || p.Col < 0 || p.Col >= c.Cols {
			return fmt.Errorf("%w: endpoint %v outside %dx%d", ErrInvalidConfig, p, c.Rows, c.Cols)
		}
	}
	if c.MaxWalkSteps < 0 || c.MaxAttempts < 0 {
		return fmt.Errorf("%w: negative generation bound", ErrInvalidConfig)
	}
	if !c.Selected.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Selected)
	}
	return nil
}

// Clock returns the current time. The default is time.Now, whose readings
// carry a monotonic component.
type Clock func() time.Time

// Options configures an Orchestrator.
type Options struct {
	Rand   *rand.Rand
	Logger *log.Logger
	Clock  Clock

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a time-seeded random source, a discarding logger
// and the wall clock.
func DefaultOptions() Options {
	return Options{
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger: log.New(io.Discard),
		Clock:  time.Now,
	}
}

// WithRand sets the random source used for grid generation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithClock replaces the clock used to time searches.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil clock", ErrOptionViolation)
			return
		}
		o.Clock = c
	}
}

// Outcome is everything one trial produced.
type Outcome struct {
	// Trial is the 1-based trial number within the session since the last Reset.
	Trial int
	Grid  *gridgraph.Grid

	Results map[search.Algorithm]*search.Result
	Paths   map[search.Algorithm][]gridgraph.Coord
	Elapsed map[search.Algorithm]time.Duration

	// Selected is the display selection at the time of the trial.
	Selected     search.Algorithm
	SelectedPath []gridgraph.Coord
}
