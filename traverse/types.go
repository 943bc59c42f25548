// Package traverse provides tunable options, error definitions and the
// shared Result type for the stepwise graph engines.
package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlviz/step"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("traverse: board is nil")

	// ErrGraphNil is returned if a board is built over a nil graph.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrEmptyGraph is returned when the model holds no vertices.
	ErrEmptyGraph = errors.New("traverse: graph has no vertices")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("traverse: start vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when any edge weight is
	// negative; the run refuses to start.
	ErrNegativeWeight = errors.New("traverse: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the engine is invoked, before any step.
type Option func(*Options)

// Options holds the pacing and cancellation parameters of one run.
type Options struct {
	// Speed is the pacing level, step.MinSpeed..step.MaxSpeed.
	Speed int

	// Token is the run's cancellation scope.
	Token *step.Token

	// Timer builds the pause timers.
	Timer step.TimerConstructor

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: default speed, a
// fresh token, system timers.
func DefaultOptions() Options {
	return Options{
		Speed: step.DefaultSpeed,
		Token: step.NewToken(),
		Timer: step.NewTimer,
	}
}

// WithSpeed sets the pacing level.
// Levels outside [step.MinSpeed, step.MaxSpeed] → ErrOptionViolation.
func WithSpeed(level int) Option {
	return func(o *Options) {
		if _, err := step.Delay(level); err != nil {
			o.err = fmt.Errorf("%w: speed level %d", ErrOptionViolation, level)
			return
		}
		o.Speed = level
	}
}

// WithToken shares the caller's cancellation token with the run.
func WithToken(tok *step.Token) Option {
	return func(o *Options) {
		if tok != nil {
			o.Token = tok
		}
	}
}

// WithTimerConstructor replaces the system pause timer.
func WithTimerConstructor(tc step.TimerConstructor) Option {
	return func(o *Options) {
		if tc != nil {
			o.Timer = tc
		}
	}
}

// buildOptions folds opts over the defaults and surfaces the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// Result holds the outcome of one traversal.
type Result struct {
	// Order lists vertex IDs in the sequence the engine settled them:
	// dequeue order for BFS, entry order for DFS, selection order for
	// Dijkstra, first-examination order for Bellman-Ford.
	Order []string

	// Dist maps vertex ID to its final distance from the start. Filled
	// by the weighted engines only; core.Unreached marks unreachable
	// vertices. Nil for BFS and DFS.
	Dist map[string]int64

	// Parent maps each reached vertex to its predecessor. The start has
	// no entry.
	Parent map[string]string

	// NegativeCycle reports that Bellman-Ford proved a reachable
	// negative cycle. Distances are then not meaningful.
	NegativeCycle bool
}

// PathTo reconstructs the path from the run's start to id by walking
// Parent links. Returns nil when id was never reached.
func (r *Result) PathTo(id string) []string {
	if r == nil {
		return nil
	}
	reached := false
	for _, v := range r.Order {
		if v == id {
			reached = true
			break
		}
	}
	if !reached {
		return nil
	}
	var rev []string
	for cur := id; ; {
		rev = append(rev, cur)
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = p
	}
	// Reverse in place: Parent links walk child→root.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
