package sorting

import "github.com/katalvlaran/lvlviz/step"

// Insertion runs stepwise insertion sort on the board.
//
// For each key the sorted prefix is scanned right to left: while the
// probed element is strictly greater than the key it shifts one slot
// right (a published write step); the first element not greater stops
// the scan, and that failing comparison is still a published step. The
// key then lands in the opened slot — skipped entirely when it never
// moved. The whole row is marked sorted at completion.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(n²) steps worst case, O(1) extra space.
func Insertion(b *Board, opts ...Option) error {
	r, err := newRunner(b, opts)
	if err != nil {
		return err
	}
	if r.finished() {
		return nil
	}

	n := b.Len()
	for i := 1; i < n; i++ {
		if r.tok.Canceled() {
			return step.ErrCanceled
		}
		key := b.Value(i)
		j := i - 1
		for j >= 0 {
			if err = r.compare(j, j+1); err != nil {
				return err
			}
			if b.Value(j) <= key {
				// Strictly-greater rule: equal elements do not shift,
				// which keeps the sort stable.
				r.settle()
				break
			}
			if err = r.write(j+1, b.Value(j)); err != nil {
				return err
			}
			r.settle()
			j--
		}
		if j+1 != i {
			if err = r.write(j+1, key); err != nil {
				return err
			}
			r.settle()
		}
	}
	r.complete()
	return nil
}
