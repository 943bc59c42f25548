package step

import (
	"sync"
	"sync/atomic"
)

// Token is the cancellation scope of a single run.
//
// It starts active and flips to canceled exactly once. The flip is
// observable two ways: Canceled()/Active() for hot-loop polling and
// Done() for select-based waits. Both stay consistent: once Done() is
// closed, Canceled() reports true.
//
// Safe for concurrent use. Cancel may race with any number of polls and
// waits.
type Token struct {
	done     chan struct{}
	once     sync.Once
	canceled atomic.Bool
}

// NewToken returns a fresh, active token. Each run must get its own.
func NewToken() *Token {
	return &Token{done: make(chan struct{})}
}

// Cancel flips the token to canceled and releases every pending wait.
// Idempotent; extra calls are no-ops.
func (t *Token) Cancel() {
	t.once.Do(func() {
		t.canceled.Store(true)
		close(t.done)
	})
}

// Canceled reports whether Cancel has been called.
func (t *Token) Canceled() bool { return t.canceled.Load() }

// Active reports whether the run may keep stepping.
func (t *Token) Active() bool { return !t.canceled.Load() }

// Done returns a channel closed on cancellation, for select-based waits.
func (t *Token) Done() <-chan struct{} { return t.done }
