// Package sorting implements the five stepwise sorting engines: bubble,
// selection, insertion, merge and quick sort.
//
// Every engine runs against a Board, which owns the element row and
// publishes an immutable snapshot through its sink after every mutation.
// A step follows one shape throughout the package:
//
//	mark compared → publish → wait
//	(when a mutation happens: mutate → mark swapped → publish → wait)
//	clear transient flags → publish
//
// The wait between publishes comes from a step.Pacer; the run's
// step.Token is honored at every wait, so a canceled run returns
// step.ErrCanceled within at most one further step. Cancellation leaves
// transient flags as they were; the run controller owns resetting a
// board to idle.
//
// # Recursion as work-stacks
//
// Merge and quick sort are expressed with explicit frame stacks instead
// of recursion. The token is checked at every frame pop, which gives the
// recursive algorithms exactly the same cancellation granularity as the
// iterative ones.
//
// # Per-variant contracts
//
//   - Bubble: after outer pass i the element at n−i−1 is marked sorted;
//     index 0 only after the final pass.
//   - Selection: one swap per pass, after the full inner scan resolved
//     the minimum; a minimum already in place produces no swap step.
//   - Insertion: shifts right while strictly greater than the key; the
//     failing comparison is still a published step.
//   - Merge: split at ⌊(lo+hi)/2⌋, ties taken from the left half; only
//     the top-level frame marks the row sorted.
//   - Quick: Lomuto partition with the last element as pivot; the final
//     pivot swap is published even when it swaps an index with itself;
//     only top-level completion marks the row sorted.
//
// Sorted flags are monotonic within a run and every run ends (when not
// canceled) with a frame in which all elements are sorted and no
// transient flag is set.
//
// Errors:
//
//	ErrNilBoard        – nil Board passed to an engine
//	ErrOptionViolation – invalid Option value
//	step.ErrCanceled   – run stopped by its token (normal outcome)
package sorting
