package step

import (
	"errors"
	"time"
)

// Speed level bounds and the linear speed→delay mapping.
const (
	// MinSpeed is the slowest level: a 1000ms pause per step.
	MinSpeed = 1

	// MaxSpeed is the fastest level: a 100ms pause per step.
	MaxSpeed = 10

	// DefaultSpeed is the level engines assume when the caller sets none.
	DefaultSpeed = 5

	delayBase = 1100 * time.Millisecond
	delayStep = 100 * time.Millisecond
)

// Sentinel errors for pacing.
var (
	// ErrSpeed indicates a speed level outside [MinSpeed, MaxSpeed].
	ErrSpeed = errors.New("step: speed level out of range")

	// ErrCanceled indicates the run's token was canceled mid-wait.
	// It marks a normal user-requested stop, not a failure.
	ErrCanceled = errors.New("step: run canceled")
)

type (
	// Timer is a resettable pause timer, injectable for tests.
	Timer interface {
		Channel() <-chan time.Time
		Reset(delay time.Duration) bool
		Stop() bool
	}

	// TimerConstructor builds a Timer armed with the given delay.
	TimerConstructor func(delay time.Duration) Timer

	systemTimer struct {
		*time.Timer
	}

	immediateTimer struct {
		ch chan time.Time
	}
)

// NewTimer builds the default system-backed timer.
func NewTimer(delay time.Duration) Timer {
	return &systemTimer{Timer: time.NewTimer(delay)}
}

func (t *systemTimer) Channel() <-chan time.Time {
	return t.C
}

// Immediate builds a timer that has already fired. It turns every pause
// into a no-op while keeping all pause points in place, which is what
// headless runs and tests want.
func Immediate(time.Duration) Timer {
	t := &immediateTimer{ch: make(chan time.Time, 1)}
	t.ch <- time.Time{}
	return t
}

func (t *immediateTimer) Channel() <-chan time.Time { return t.ch }

func (t *immediateTimer) Reset(time.Duration) bool {
	select {
	case t.ch <- time.Time{}:
	default:
	}
	return true
}

func (t *immediateTimer) Stop() bool { return true }

// Delay maps a speed level onto its per-step pause: 1100ms − level×100ms,
// so MinSpeed pauses 1000ms and MaxSpeed pauses 100ms.
// Returns ErrSpeed outside [MinSpeed, MaxSpeed].
func Delay(speed int) (time.Duration, error) {
	if speed < MinSpeed || speed > MaxSpeed {
		return 0, ErrSpeed
	}
	return delayBase - time.Duration(speed)*delayStep, nil
}

// Pacer issues the pause between two published steps of one run.
//
// The zero value is not usable; build with NewPacer.
type Pacer struct {
	delay     time.Duration
	makeTimer TimerConstructor
}

// PacerOption adjusts pacer construction.
type PacerOption func(*Pacer)

// WithTimerConstructor replaces the system timer, typically with
// Immediate for headless runs and tests.
func WithTimerConstructor(tc TimerConstructor) PacerOption {
	return func(p *Pacer) {
		if tc != nil {
			p.makeTimer = tc
		}
	}
}

// NewPacer validates the speed level and builds a pacer for it.
// Returns ErrSpeed outside [MinSpeed, MaxSpeed].
func NewPacer(speed int, opts ...PacerOption) (*Pacer, error) {
	delay, err := Delay(speed)
	if err != nil {
		return nil, err
	}
	p := &Pacer{delay: delay, makeTimer: NewTimer}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// DelayPerStep reports the pause this pacer issues between steps.
func (p *Pacer) DelayPerStep() time.Duration { return p.delay }

// Wait blocks for the configured delay or until tok cancels, whichever
// comes first. Returns ErrCanceled when the token won; a canceled token
// short-circuits without arming a timer.
func (p *Pacer) Wait(tok *Token) error {
	if tok.Canceled() {
		return ErrCanceled
	}
	t := p.makeTimer(p.delay)
	defer t.Stop()
	select {
	case <-t.Channel():
		return nil
	case <-tok.Done():
		return ErrCanceled
	}
}
