package sorting

import "github.com/katalvlaran/lvlviz/step"

// Selection runs stepwise selection sort on the board.
//
// Each pass scans the unsorted tail while tracking the index of the
// running minimum; every probe against the current minimum is a published
// comparison step. Only after the full scan is the resolved minimum
// swapped into slot i — a single swap per pass, and none at all when the
// minimum already sits in place. Slot i is then marked sorted.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(n²) steps, O(1) extra space.
func Selection(b *Board, opts ...Option) error {
	r, err := newRunner(b, opts)
	if err != nil {
		return err
	}
	if r.finished() {
		return nil
	}

	n := b.Len()
	for i := 0; i < n-1; i++ {
		if r.tok.Canceled() {
			return step.ErrCanceled
		}
		min := i
		for j := i + 1; j < n; j++ {
			if err = r.compare(j, min); err != nil {
				return err
			}
			if b.Value(j) < b.Value(min) {
				min = j
			}
			r.settle()
		}
		if r.tok.Canceled() {
			return step.ErrCanceled
		}
		if min != i {
			if err = r.swap(i, min); err != nil {
				return err
			}
			r.settle()
		}
		b.MarkSorted(i)
		b.Publish()
	}
	b.MarkSorted(n - 1)
	b.Publish()
	return nil
}
