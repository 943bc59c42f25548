package step

import (
	"sync"

	"github.com/katalvlaran/lvlviz/core"
)

// ArraySink receives every published frame of a sorting run.
// Implementations must treat the snapshot as read-only; they may retain it.
type ArraySink interface {
	PublishArray(core.ArraySnapshot)
}

// GraphSink receives every published frame of a traversal run.
// Implementations must treat the snapshot as read-only; they may retain it.
type GraphSink interface {
	PublishGraph(core.GraphSnapshot)
}

// ArraySinkFunc adapts a function to an ArraySink.
type ArraySinkFunc func(core.ArraySnapshot)

// PublishArray calls f(s).
func (f ArraySinkFunc) PublishArray(s core.ArraySnapshot) { f(s) }

// GraphSinkFunc adapts a function to a GraphSink.
type GraphSinkFunc func(core.GraphSnapshot)

// PublishGraph calls f(s).
func (f GraphSinkFunc) PublishGraph(s core.GraphSnapshot) { f(s) }

// NopSink discards every frame. It is the default sink, so engines can
// always publish unconditionally.
type NopSink struct{}

// PublishArray discards the frame.
func (NopSink) PublishArray(core.ArraySnapshot) {}

// PublishGraph discards the frame.
func (NopSink) PublishGraph(core.GraphSnapshot) {}

// Recorder retains every published frame in order. Tests assert against
// the recorded sequence; the CLI uses it for post-run replay.
//
// Safe for concurrent use; the zero value is ready.
type Recorder struct {
	mu     sync.Mutex
	arrays []core.ArraySnapshot
	graphs []core.GraphSnapshot
}

// PublishArray appends the frame to the recorded sequence.
func (r *Recorder) PublishArray(s core.ArraySnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.arrays = append(r.arrays, s)
}

// PublishGraph appends the frame to the recorded sequence.
func (r *Recorder) PublishGraph(s core.GraphSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graphs = append(r.graphs, s)
}

// Arrays returns the recorded sorting frames in publish order.
func (r *Recorder) Arrays() []core.ArraySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.ArraySnapshot, len(r.arrays))
	copy(out, r.arrays)
	return out
}

// Graphs returns the recorded traversal frames in publish order.
func (r *Recorder) Graphs() []core.GraphSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.GraphSnapshot, len(r.graphs))
	copy(out, r.graphs)
	return out
}
