package sorting

import "github.com/katalvlaran/lvlviz/step"

// Quick runs stepwise quicksort on the board.
//
// Partitioning is Lomuto with the last element of the range as pivot:
// every element is compared against the pivot (published step) and the
// strictly-less ones swap leftward. The final swap placing the pivot is
// always published, even when it exchanges an index with itself — the
// pivot settling is a step of its own. The recursion lives on an
// explicit range stack, left subrange popped first, with the token
// checked at every pop. Only top-level completion marks the row sorted.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(n log n) expected steps, O(log n) stack space.
func Quick(b *Board, opts ...Option) error {
	r, err := newRunner(b, opts)
	if err != nil {
		return err
	}
	if r.finished() {
		return nil
	}

	stack := [][2]int{{0, b.Len() - 1}}
	for len(stack) > 0 {
		if r.tok.Canceled() {
			return step.ErrCanceled
		}
		rg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := rg[0], rg[1]
		if lo >= hi {
			continue
		}
		p, err := r.partition(lo, hi)
		if err != nil {
			return err
		}
		// Left subrange on top: it partitions next, matching the
		// recursive order.
		stack = append(stack, [2]int{p + 1, hi}, [2]int{lo, p - 1})
	}
	r.complete()
	return nil
}

// partition applies Lomuto partitioning to [lo..hi] and returns the
// pivot's final index.
func (r *runner) partition(lo, hi int) (int, error) {
	pivot := r.b.Value(hi)
	i := lo - 1
	for j := lo; j < hi; j++ {
		if err := r.compare(j, hi); err != nil {
			return 0, err
		}
		if r.b.Value(j) < pivot {
			i++
			if err := r.swap(i, j); err != nil {
				return 0, err
			}
		}
		r.settle()
	}
	i++
	// Pivot placement publishes unconditionally, self-swap included.
	if err := r.swap(i, hi); err != nil {
		return 0, err
	}
	r.settle()
	return i, nil
}
