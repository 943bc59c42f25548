package sorting

import (
	"github.com/katalvlaran/lvlviz/step"
)

// runner bundles the board with the run's pacing and cancellation, and
// spells the canonical step shape out once for all five engines.
type runner struct {
	b     *Board
	pacer *step.Pacer
	tok   *step.Token
}

// newRunner validates inputs, folds the options and assembles the run.
func newRunner(b *Board, opts []Option) (*runner, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	pacer, err := step.NewPacer(o.Speed, step.WithTimerConstructor(o.Timer))
	if err != nil {
		return nil, err
	}
	return &runner{b: b, pacer: pacer, tok: o.Token}, nil
}

// finished handles the trivial rows: empty and single-element input is
// sorted by definition and completes with one final publish.
func (r *runner) finished() bool {
	if r.b.Len() > 1 {
		return false
	}
	r.complete()
	return true
}

// pause issues the configured delay, resolving early on cancellation.
func (r *runner) pause() error {
	return r.pacer.Wait(r.tok)
}

// compare marks i and j as compared, publishes, and waits.
func (r *runner) compare(i, j int) error {
	r.b.MarkCompared(i, j)
	r.b.Publish()
	return r.pause()
}

// swap exchanges i and j, marks them swapped, publishes, and waits.
func (r *runner) swap(i, j int) error {
	r.b.Swap(i, j)
	r.b.MarkSwapped(i, j)
	r.b.Publish()
	return r.pause()
}

// write overwrites position i with v, marks it swapped, publishes, waits.
func (r *runner) write(i, v int) error {
	r.b.Set(i, v)
	r.b.MarkSwapped(i)
	r.b.Publish()
	return r.pause()
}

// settle closes the step: transient flags drop and the clean row is
// published. No wait; the next step's publish paces itself.
func (r *runner) settle() {
	r.b.ClearTransient()
	r.b.Publish()
}

// complete marks the whole row sorted and publishes the terminal frame.
func (r *runner) complete() {
	r.b.ClearTransient()
	r.b.MarkAllSorted()
	r.b.Publish()
}
