package run

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/internal/logging"
	"github.com/katalvlaran/lvlviz/sorting"
	"github.com/katalvlaran/lvlviz/step"
	"github.com/katalvlaran/lvlviz/traverse"
)

// Sentinel errors for run management.
var (
	// ErrActive is returned when a start arrives while another run is
	// still in flight. Callers stop the active run first; nothing is
	// ever canceled implicitly.
	ErrActive = errors.New("run: another run is active")

	// ErrUnknownAlgorithm is returned for an id outside the catalog,
	// or a sorting id passed to StartTraversal and vice versa.
	ErrUnknownAlgorithm = errors.New("run: unknown algorithm")

	// ErrEmptyInput is returned when a sort is started with no values.
	ErrEmptyInput = errors.New("run: empty input")
)

// board is what the controller needs from either engine's board to
// restore the idle picture after a stop.
type board interface {
	ClearTransient()
	Publish()
}

// Controller serializes stepwise runs: at most one session is active,
// each run gets a fresh token, and Stop restores the idle picture.
type Controller struct {
	log       *slog.Logger
	metrics   *Metrics
	arraySink step.ArraySink
	graphSink step.GraphSink
	timer     step.TimerConstructor

	mu     sync.Mutex
	active *Session
	board  board
	last   *Session
}

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithLogger routes run lifecycle logging through l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics attaches Prometheus collectors; without it the
// controller skips all counting.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithArraySink routes every sorting frame to s.
func WithArraySink(s step.ArraySink) Option {
	return func(c *Controller) {
		if s != nil {
			c.arraySink = s
		}
	}
}

// WithGraphSink routes every traversal frame to s.
func WithGraphSink(s step.GraphSink) Option {
	return func(c *Controller) {
		if s != nil {
			c.graphSink = s
		}
	}
}

// WithTimerConstructor replaces the pause timers of every run this
// controller starts; step.Immediate makes runs headless.
func WithTimerConstructor(tc step.TimerConstructor) Option {
	return func(c *Controller) {
		if tc != nil {
			c.timer = tc
		}
	}
}

// New assembles a Controller. Without options it runs silently on
// system timers and publishes nowhere.
func New(opts ...Option) *Controller {
	c := &Controller{
		log:       logging.NewNop(),
		arraySink: step.NopSink{},
		graphSink: step.NopSink{},
		timer:     step.NewTimer,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics != nil {
		c.arraySink = countingArraySink{inner: c.arraySink, frames: c.metrics.FramesTotal}
		c.graphSink = countingGraphSink{inner: c.graphSink, frames: c.metrics.FramesTotal}
	}
	return c
}

// StartOption tunes one Start call.
type StartOption func(*startOptions)

type startOptions struct {
	speed     int
	positions map[string]core.Position
	err       error
}

// WithSpeed sets the pacing level of the run.
// Levels outside [step.MinSpeed, step.MaxSpeed] refuse the start.
func WithSpeed(level int) StartOption {
	return func(o *startOptions) {
		if _, err := step.Delay(level); err != nil {
			o.err = fmt.Errorf("%w: speed level %d", step.ErrSpeed, level)
			return
		}
		o.speed = level
	}
}

// WithPositions copies layout coordinates onto a traversal board so
// published frames carry them. Ignored by StartSort.
func WithPositions(pos map[string]core.Position) StartOption {
	return func(o *startOptions) { o.positions = pos }
}

func buildStartOptions(opts []StartOption) (startOptions, error) {
	o := startOptions{speed: step.DefaultSpeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return startOptions{}, o.err
	}
	return o, nil
}

// StartSort begins a sorting session over values.
//
// Unknown ids, empty input and invalid options are refused before any
// step executes; ErrActive is returned while another run is in flight.
// The returned session is already executing on its own goroutine.
func (c *Controller) StartSort(algo Algorithm, values []int, opts ...StartOption) (*Session, error) {
	engine, ok := sortEngines[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	o, err := buildStartOptions(opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return nil, ErrActive
	}

	s := newSession(algo, o.speed)
	b := sorting.NewBoard(values, c.arraySink)
	c.adopt(s, b)

	go func() {
		err := engine(b,
			sorting.WithSpeed(s.Speed),
			sorting.WithToken(s.token),
			sorting.WithTimerConstructor(c.timer),
		)
		c.settle(s, nil, err)
	}()
	return s, nil
}

// StartTraversal begins a graph session over g from the start vertex.
//
// Every precondition is checked synchronously: unknown id, nil or
// empty graph, absent start vertex, negative weights for Dijkstra,
// invalid options — the run never starts on any of them. ErrActive is
// returned while another run is in flight.
func (c *Controller) StartTraversal(algo Algorithm, g *core.Graph, start string, opts ...StartOption) (*Session, error) {
	engine, ok := graphEngines[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	if g == nil {
		return nil, traverse.ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return nil, traverse.ErrEmptyGraph
	}
	if !g.HasVertex(start) {
		return nil, traverse.ErrStartVertexNotFound
	}
	if algo == AlgoDijkstra {
		// Refuse here so the HTTP surface can answer synchronously
		// instead of surfacing a failed session one frame later.
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, traverse.ErrNegativeWeight
			}
		}
	}
	o, err := buildStartOptions(opts)
	if err != nil {
		return nil, err
	}

	var boardOpts []traverse.BoardOption
	if o.positions != nil {
		boardOpts = append(boardOpts, traverse.WithPositions(o.positions))
	}
	b, err := traverse.NewBoard(g, c.graphSink, boardOpts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		return nil, ErrActive
	}

	s := newSession(algo, o.speed)
	c.adopt(s, b)

	go func() {
		res, err := engine(b, start,
			traverse.WithSpeed(s.Speed),
			traverse.WithToken(s.token),
			traverse.WithTimerConstructor(c.timer),
		)
		c.settle(s, res, err)
	}()
	return s, nil
}

// adopt installs s as the active session. Caller holds mu.
func (c *Controller) adopt(s *Session, b board) {
	c.active = s
	c.board = b
	if c.metrics != nil {
		c.metrics.ActiveRuns.Set(1)
	}
	c.log.Info("run started",
		logging.RunID(s.ID),
		logging.Algo(string(s.Algorithm)),
		logging.Speed(s.Speed),
	)
}

// settle records the terminal state of s and releases the active slot.
// Runs on the session's goroutine after the engine returned.
func (c *Controller) settle(s *Session, res *traverse.Result, err error) {
	outcome := classify(res, err)

	c.mu.Lock()
	c.active = nil
	c.board = nil
	c.last = s
	c.mu.Unlock()

	switch outcome {
	case OutcomeFailed:
		s.finish(outcome, err, nil)
		c.log.Error("run failed",
			logging.RunID(s.ID),
			logging.Algo(string(s.Algorithm)),
			logging.Err(err),
		)
	default:
		// Cancellation and negative cycles are findings, not failures;
		// Err stays nil for them.
		s.finish(outcome, nil, res)
		c.log.Info("run finished",
			logging.RunID(s.ID),
			logging.Algo(string(s.Algorithm)),
			slog.String("outcome", string(outcome)),
			slog.Duration("duration", time.Since(s.started)),
		)
	}
	if c.metrics != nil {
		c.metrics.ActiveRuns.Set(0)
		c.metrics.RunsTotal.WithLabelValues(string(s.Algorithm), string(outcome)).Inc()
	}
}

// classify maps an engine return onto the session outcome.
func classify(res *traverse.Result, err error) Outcome {
	switch {
	case err == nil && res != nil && res.NegativeCycle:
		return OutcomeNegativeCycle
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, step.ErrCanceled):
		return OutcomeCanceled
	default:
		return OutcomeFailed
	}
}

// Stop cancels the active run and blocks until it is terminal, then
// clears the board's transient marks and publishes one final idle
// frame. Canceling releases every pending pause at once; the engine
// publishes at most one further step before returning. Stop returns
// the session it ended, or nil when no run was active.
func (c *Controller) Stop() *Session {
	c.mu.Lock()
	s, b := c.active, c.board
	c.mu.Unlock()
	if s == nil {
		return nil
	}

	s.token.Cancel()
	s.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Skip the idle frame when a new run already took over or a
	// concurrent Stop published it first; a stale frame must never
	// land after a fresh run's output.
	if c.active == nil && !s.idled {
		s.idled = true
		b.ClearTransient()
		b.Publish()
	}
	return s
}

// Active returns the session currently in flight, or nil.
func (c *Controller) Active() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Last returns the most recently finished session, or nil before the
// first run completes.
func (c *Controller) Last() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// countingArraySink forwards frames and counts them.
type countingArraySink struct {
	inner  step.ArraySink
	frames prometheus.Counter
}

func (s countingArraySink) PublishArray(a core.ArraySnapshot) {
	s.frames.Inc()
	s.inner.PublishArray(a)
}

// countingGraphSink forwards frames and counts them.
type countingGraphSink struct {
	inner  step.GraphSink
	frames prometheus.Counter
}

func (s countingGraphSink) PublishGraph(g core.GraphSnapshot) {
	s.frames.Inc()
	s.inner.PublishGraph(g)
}
