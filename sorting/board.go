package sorting

import (
	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/step"
)

// Board owns the mutable element row of one sorting run and publishes an
// immutable copy through its sink after every change.
//
// A Board belongs to a single run at a time; engines mutate it only from
// the run's goroutine. The sink may fan frames out wherever it likes.
type Board struct {
	els  []core.Element
	sink step.ArraySink
}

// NewBoard wraps values into a fresh board. A nil sink publishes nowhere.
func NewBoard(values []int, sink step.ArraySink) *Board {
	if sink == nil {
		sink = step.NopSink{}
	}
	return &Board{els: core.NewElements(values), sink: sink}
}

// Len returns the number of elements.
func (b *Board) Len() int { return len(b.els) }

// Value returns the element value at index i.
func (b *Board) Value(i int) int { return b.els[i].Value }

// Values returns the raw values in row order.
func (b *Board) Values() []int {
	out := make([]int, len(b.els))
	for i, el := range b.els {
		out[i] = el.Value
	}
	return out
}

// Snapshot returns a frozen copy of the current row.
func (b *Board) Snapshot() core.ArraySnapshot {
	return core.CopyElements(b.els)
}

// Publish pushes a frozen copy of the current row to the sink.
func (b *Board) Publish() {
	b.sink.PublishArray(core.CopyElements(b.els))
}

// MarkCompared flags i and j as the comparison in flight.
func (b *Board) MarkCompared(i, j int) {
	b.els[i].Compared = true
	b.els[j].Compared = true
}

// MarkSwapped flags the given indices as mutated in this step.
func (b *Board) MarkSwapped(idx ...int) {
	for _, i := range idx {
		b.els[i].Swapped = true
	}
}

// Swap exchanges the values at i and j. Flags stay with the positions.
func (b *Board) Swap(i, j int) {
	b.els[i].Value, b.els[j].Value = b.els[j].Value, b.els[i].Value
}

// Set overwrites the value at i, for shift and merge write-backs.
func (b *Board) Set(i, v int) {
	b.els[i].Value = v
}

// MarkSorted flags the given indices as settled. Sorted is monotonic:
// nothing in this package ever clears it mid-run.
func (b *Board) MarkSorted(idx ...int) {
	for _, i := range idx {
		b.els[i].Sorted = true
	}
}

// MarkAllSorted flags the whole row as settled.
func (b *Board) MarkAllSorted() {
	for i := range b.els {
		b.els[i].Sorted = true
	}
}

// ClearTransient drops every Compared and Swapped flag. Sorted survives.
func (b *Board) ClearTransient() {
	for i := range b.els {
		b.els[i].Compared = false
		b.els[i].Swapped = false
	}
}
