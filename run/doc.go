// Package run drives stepwise algorithm executions as managed
// sessions: at most one run is active at a time, every run gets a
// fresh cancellation token and a UUID, and stopping is an explicit
// operation with a defined terminal picture.
//
// # Lifecycle
//
// StartSort and StartTraversal validate everything up front — unknown
// algorithm, empty input, missing start vertex, invalid speed — and
// refuse with ErrActive while another run is in flight; nothing is
// ever canceled implicitly. A started run executes on its own
// goroutine, publishing into the controller's configured sinks.
//
// Wait blocks until the session is terminal; the outcome is one of
//
//	OutcomeCompleted      the engine ran to its settled final frame
//	OutcomeCanceled       Stop ended the run early
//	OutcomeNegativeCycle  Bellman-Ford proved a reachable cycle
//	OutcomeFailed         the engine returned an unexpected error
//
// Stop cancels the active token, which releases every pending pause at
// once; the engine publishes at most one further step, then the
// controller clears the transient marks and publishes one final idle
// frame. Stop without an active run does nothing.
//
// The controller logs run start and terminal outcome through its
// slog.Logger and, when metrics are attached, counts runs by algorithm
// and outcome, published frames, and the active-run gauge.
package run
