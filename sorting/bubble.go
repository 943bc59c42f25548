package sorting

import "github.com/katalvlaran/lvlviz/step"

// Bubble runs stepwise bubble sort on the board.
//
// Adjacent pairs are compared left to right; each outer pass floats the
// largest remaining value to the right edge, so after pass i the element
// at n−i−1 is marked sorted and published. Index 0 is marked sorted only
// after the final pass.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(n²) steps, O(1) extra space.
func Bubble(b *Board, opts ...Option) error {
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
		for j := 0; j < n-i-1; j++ {
			if err = r.compare(j, j+1); err != nil {
				return err
			}
			if b.Value(j) > b.Value(j+1) {
				if err = r.swap(j, j+1); err != nil {
					return err
				}
			}
			r.settle()
		}
		if r.tok.Canceled() {
			return step.ErrCanceled
		}
		// The pass floated its maximum to the right edge of the range.
		b.MarkSorted(n - i - 1)
		b.Publish()
	}
	b.MarkSorted(0)
	b.Publish()
	return nil
}
