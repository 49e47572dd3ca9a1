package arbitrate_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharma/yatra-planner/backend/internal/arbitrate"
	"github.com/asharma/yatra-planner/backend/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExecute_RemoteWins(t *testing.T) {
	got, degraded, err := arbitrate.Execute(context.Background(), time.Second,
		func(context.Context) (string, error) { return "remote", nil },
		func(context.Context) (string, error) { return "offline", nil },
		discardLogger())

	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, "remote", got)
}

// TestExecute_RemoteErrorFallsBack verifies that any remote failure routes to
// the offline path with the degraded flag set, never surfacing the error.
func TestExecute_RemoteErrorFallsBack(t *testing.T) {
	for _, remoteErr := range []error{
		domain.ErrRemoteUnavailable,
		domain.ErrMalformedResponse,
		errors.New("connection reset"),
	} {
		got, degraded, err := arbitrate.Execute(context.Background(), time.Second,
			func(context.Context) (string, error) { return "", remoteErr },
			func(context.Context) (string, error) { return "offline", nil },
			discardLogger())

		require.NoError(t, err)
		assert.True(t, degraded)
		assert.Equal(t, "offline", got)
	}
}

// TestExecute_SlowRemoteTimesOut verifies that a remote call exceeding the
// bound loses the race: the offline result is served even though the remote
// call would eventually have succeeded, and the remote branch sees its
// context cancelled.
func TestExecute_SlowRemoteTimesOut(t *testing.T) {
	remoteCtxDone := make(chan struct{})

	got, degraded, err := arbitrate.Execute(context.Background(), 20*time.Millisecond,
		func(ctx context.Context) (string, error) {
			<-ctx.Done()
			close(remoteCtxDone)
			return "remote", nil
		},
		func(context.Context) (string, error) { return "offline", nil },
		discardLogger())

	require.NoError(t, err)
	assert.True(t, degraded)
	assert.Equal(t, "offline", got)

	select {
	case <-remoteCtxDone:
	case <-time.After(time.Second):
		t.Fatal("remote branch was never cancelled")
	}
}

// TestExecute_ZeroTimeoutNoTimer verifies that with timeout zero the remote
// call is bounded only by its own failure signal.
func TestExecute_ZeroTimeoutNoTimer(t *testing.T) {
	got, degraded, err := arbitrate.Execute(context.Background(), 0,
		func(context.Context) (string, error) {
			time.Sleep(30 * time.Millisecond)
			return "slow remote", nil
		},
		func(context.Context) (string, error) { return "offline", nil },
		discardLogger())

	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, "slow remote", got)
}

// TestExecute_OfflineFailurePropagates verifies that when both sides fail the
// offline error is returned, since there is no further fallback.
func TestExecute_OfflineFailurePropagates(t *testing.T) {
	offlineErr := errors.New("local store broken")

	_, degraded, err := arbitrate.Execute(context.Background(), time.Second,
		func(context.Context) (string, error) { return "", domain.ErrRemoteUnavailable },
		func(context.Context) (string, error) { return "", offlineErr },
		discardLogger())

	require.ErrorIs(t, err, offlineErr)
	assert.True(t, degraded)
}

// TestExecute_ParentCancellationNoFallback verifies that a cancelled caller
// gets the context error and no offline attempt.
func TestExecute_ParentCancellationNoFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	offlineRan := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, _, err := arbitrate.Execute(ctx, time.Second,
		func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		func(context.Context) (string, error) {
			offlineRan = true
			return "offline", nil
		},
		discardLogger())

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, offlineRan)
}
