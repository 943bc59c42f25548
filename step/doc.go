// Package step supplies the pacing and cancellation primitives every
// engine run is built from: a per-run cancellation Token, a Pacer that
// converts a speed level into cancelable pauses, and the sink contracts
// through which engines publish immutable snapshots.
//
// The contract between an engine and its caller is narrow on purpose.
// An engine needs exactly two capabilities: "publish the current state"
// (ArraySink / GraphSink) and "wait the configured delay unless the run
// is canceled" (Pacer.Wait with a Token). Everything else — who renders,
// where frames go, how long a pause lasts — stays outside the engine.
//
// # Cancellation
//
// One Token is created per run and shared by every pause point of that
// run. Cancel closes the token's done channel, so every in-flight
// Pacer.Wait unblocks at once and every later Wait returns immediately:
// tearing down one token invalidates all pending and future pauses of
// its run. Tokens are never reused; a new run gets a new token, so a
// stale Cancel from a previous run cannot suspend the next one.
//
// # Pacing
//
// Speed levels run 1 (slowest) to 10 (fastest) and map linearly onto
// delays of 1000ms down to 100ms. Timer construction is injectable, so
// tests and headless runs replace real timers with Immediate ones and
// finish in microseconds while exercising the exact pause points.
//
// Errors:
//
//	ErrSpeed    – speed level outside [MinSpeed, MaxSpeed]
//	ErrCanceled – the run's token was canceled; the normal outcome of a
//	              user-requested stop, not a failure
package step
