// Package sorting provides tunable options and error definitions for the
// stepwise sorting engines.
package sorting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlviz/step"
)

// Sentinel errors for sorting execution.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("sorting: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

// Option configures engine behavior via functional arguments.
// An invalid Option (e.g. speed out of range) is recorded internally and
// surfaced as ErrOptionViolation when the engine is invoked, before any
// step executes.
type Option func(*Options)

// Options holds the pacing and cancellation parameters of one run.
type Options struct {
	// Speed is the pacing level, step.MinSpeed..step.MaxSpeed.
	Speed int

	// Token is the run's cancellation scope.
	Token *step.Token

	// Timer builds the pause timers; replaced by step.Immediate for
	// headless runs and tests.
	Timer step.TimerConstructor

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - step.DefaultSpeed pacing
//   - a fresh token (the run can only be canceled by its owner)
//   - system timers.
func DefaultOptions() Options {
	return Options{
		Speed: step.DefaultSpeed,
		Token: step.NewToken(),
		Timer: step.NewTimer,
	}
}

// WithSpeed sets the pacing level.
// Levels outside [step.MinSpeed, step.MaxSpeed] → ErrOptionViolation.
func WithSpeed(level int) Option {
	return func(o *Options) {
		if _, err := step.Delay(level); err != nil {
			o.err = fmt.Errorf("%w: speed level %d", ErrOptionViolation, level)
			return
		}
		o.Speed = level
	}
}

// WithToken shares the caller's cancellation token with the run.
func WithToken(tok *step.Token) Option {
	return func(o *Options) {
		if tok != nil {
			o.Token = tok
		}
	}
}

// WithTimerConstructor replaces the system pause timer.
func WithTimerConstructor(tc step.TimerConstructor) Option {
	return func(o *Options) {
		if tc != nil {
			o.Timer = tc
		}
	}
}

// buildOptions folds opts over the defaults and surfaces the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
