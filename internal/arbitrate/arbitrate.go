// Package arbitrate decides, per call, whether a result comes from the
// remote service or the local offline path. A remote operation is raced
// against a bounded timer; any remote failure — network error, malformed
// payload, or timeout — routes to the offline operation instead, so the
// caller always gets a result unless the offline path itself fails.
package arbitrate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// Operation is one side of the race: a remote call or its offline equivalent.
// Both sides must produce the same shape so downstream consumers never branch.
type Operation[T any] func(ctx context.Context) (T, error)

// Execute runs remote and, on any failure, falls back to offline.
//
// With timeout > 0 the remote call is raced against a timer; when the timer
// wins, the remote branch is cancelled through its context and its eventual
// result is discarded. With timeout == 0 the remote call is bounded only by
// its own failure signal (and the parent context).
//
// The degraded return is true exactly when the result came from offline.
// Remote failures are never surfaced to the caller; an offline failure
// propagates, since no further fallback exists. Cancellation of the parent
// context propagates as well — a gone caller gets no fallback.
func Execute[T any](ctx context.Context, timeout time.Duration, remote, offline Operation[T], logger *slog.Logger) (T, bool, error) {
	var rctx context.Context
	var cancel context.CancelFunc
	if timeout > 0 {
		rctx, cancel = context.WithTimeoutCause(ctx, timeout, domain.ErrRemoteTimeout)
	} else {
		rctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	results := make(chan outcome, 1)
	go func() {
		v, err := remote(rctx)
		results <- outcome{value: v, err: err}
	}()

	var remoteErr error
	select {
	case out := <-results:
		if out.err == nil {
			return out.value, false, nil
		}
		if ctx.Err() != nil {
			var zero T
			return zero, false, ctx.Err()
		}
		remoteErr = out.err
	case <-rctx.Done():
		if ctx.Err() != nil {
			var zero T
			return zero, false, ctx.Err()
		}
		remoteErr = domain.ErrRemoteTimeout
	}
	cancel() // release the losing remote branch before running offline

	logger.WarnContext(ctx, "remote call failed, using offline path",
		"kind", classify(remoteErr), "error", remoteErr)

	value, err := offline(ctx)
	if err != nil {
		var zero T
		return zero, true, err
	}
	return value, true, nil
}

// classify buckets a remote failure into the domain error kinds for logging.
// The arbitrator handles all kinds identically; only the log line differs.
func classify(err error) string {
	switch {
	case errors.Is(err, domain.ErrRemoteTimeout), errors.Is(err, context.DeadlineExceeded):
		return "remote_timeout"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed_response"
	default:
		return "remote_unavailable"
	}
}
