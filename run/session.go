package run

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlviz/step"
	"github.com/katalvlaran/lvlviz/traverse"
)

// Outcome is the terminal state of a session.
type Outcome string

const (
	// OutcomeRunning is reported while the run is still in flight.
	OutcomeRunning Outcome = "running"

	// OutcomeCompleted marks a run that reached its settled final frame.
	OutcomeCompleted Outcome = "completed"

	// OutcomeCanceled marks a run ended early by Stop.
	OutcomeCanceled Outcome = "canceled"

	// OutcomeNegativeCycle marks a Bellman-Ford run that proved a
	// reachable negative cycle. A finding, not a failure.
	OutcomeNegativeCycle Outcome = "negative_cycle"

	// OutcomeFailed marks a run whose engine returned an unexpected
	// error mid-flight.
	OutcomeFailed Outcome = "failed"
)

// Session is one managed run. ID, Algorithm and Speed are fixed at
// start; the remaining accessors stay at their zero state until the
// run is terminal, so polling a live session is race-free.
type Session struct {
	// ID is the unique run identifier.
	ID string

	// Algorithm names the engine this session executes.
	Algorithm Algorithm

	// Speed is the pacing level the session runs at.
	Speed int

	token   *step.Token
	started time.Time
	done    chan struct{}

	// idled guards the one idle frame Stop may publish; the
	// controller's mutex serializes access.
	idled bool

	// written once by the run goroutine before done closes
	outcome Outcome
	err     error
	result  *traverse.Result
}

func newSession(algo Algorithm, speed int) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Algorithm: algo,
		Speed:     speed,
		token:     step.NewToken(),
		started:   time.Now(),
		done:      make(chan struct{}),
	}
}

// finish records the terminal state. Called exactly once.
func (s *Session) finish(outcome Outcome, err error, res *traverse.Result) {
	s.outcome = outcome
	s.err = err
	s.result = res
	close(s.done)
}

func (s *Session) terminal() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the session reaches a terminal outcome.
func (s *Session) Wait() {
	<-s.done
}

// Outcome reports the terminal outcome, or OutcomeRunning while the
// run is still executing.
func (s *Session) Outcome() Outcome {
	if !s.terminal() {
		return OutcomeRunning
	}
	return s.outcome
}

// Err reports the error a failed session ended with. Nil while
// running and for every non-failed outcome.
func (s *Session) Err() error {
	if !s.terminal() {
		return nil
	}
	return s.err
}

// Result returns the traversal result once terminal. Nil for sorting
// sessions, live sessions and canceled traversals.
func (s *Session) Result() *traverse.Result {
	if !s.terminal() {
		return nil
	}
	return s.result
}
