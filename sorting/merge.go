package sorting

import "github.com/katalvlaran/lvlviz/step"

// mergeFrame is one unit of work on the explicit merge-sort stack.
// A split frame divides its range; a merge frame combines two halves
// that earlier frames already sorted.
type mergeFrame struct {
	lo, mid, hi int
	merge       bool
}

// Merge runs stepwise merge sort on the board.
//
// Ranges split at ⌊(lo+hi)/2⌋. The recursion is laid out on an explicit
// frame stack — left half, right half, then the merge of both — with the
// run's token checked at every frame pop, so cancellation cuts in
// between any two units of work exactly as it does for the iterative
// sorts. Merging is stable: on ties the left half wins. Each merge
// compares the two half heads (published step) and writes the winner
// back into the row (published write step). Only the top-level frame,
// spanning the full row, marks everything sorted.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(n log n) steps, O(n) auxiliary space per merge.
func Merge(b *Board, opts ...Option) error {
	r, err := newRunner(b, opts)
	if err != nil {
		return err
	}
	if r.finished() {
		return nil
	}

	stack := []mergeFrame{{lo: 0, hi: b.Len() - 1}}
	for len(stack) > 0 {
		if r.tok.Canceled() {
			return step.ErrCanceled
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.merge {
			if err = r.mergeHalves(f.lo, f.mid, f.hi); err != nil {
				return err
			}
			continue
		}
		if f.lo >= f.hi {
			continue
		}
		mid := (f.lo + f.hi) / 2
		// Pushed in reverse execution order: the merge frame runs after
		// both halves settled, the left half runs first.
		stack = append(stack,
			mergeFrame{lo: f.lo, mid: mid, hi: f.hi, merge: true},
			mergeFrame{lo: mid + 1, hi: f.hi},
			mergeFrame{lo: f.lo, hi: mid},
		)
	}
	r.complete()
	return nil
}

// mergeHalves combines the sorted ranges [lo..mid] and [mid+1..hi].
func (r *runner) mergeHalves(lo, mid, hi int) error {
	left := make([]int, mid-lo+1)
	right := make([]int, hi-mid)
	for i := range left {
		left[i] = r.b.Value(lo + i)
	}
	for j := range right {
		right[j] = r.b.Value(mid + 1 + j)
	}

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if err := r.compare(lo+i, mid+1+j); err != nil {
			return err
		}
		var v int
		if left[i] <= right[j] {
			// Tie goes to the left half: stability.
			v = left[i]
			i++
		} else {
			v = right[j]
			j++
		}
		if err := r.write(k, v); err != nil {
			return err
		}
		r.settle()
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		if err := r.write(k, left[i]); err != nil {
			return err
		}
		r.settle()
	}
	for ; j < len(right); j, k = j+1, k+1 {
		if err := r.write(k, right[j]); err != nil {
			return err
		}
		r.settle()
	}
	return nil
}
