package recon_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/kv"
	"github.com/asharma/yatra-planner/backend/internal/recon"
	"github.com/asharma/yatra-planner/backend/internal/store"
)

func TestStartScheduler_InvalidSpec(t *testing.T) {
	mutlog := store.NewMutationLog(kv.NewMemory(), discardLogger())
	r := recon.NewReconciler(mutlog, &replayRecorder{}, discardLogger())

	_, err := recon.StartScheduler(r, "every now and then", discardLogger())

	require.Error(t, err)
}

func TestScheduler_StopOnNilIsSafe(t *testing.T) {
	var s *recon.Scheduler
	s.Stop()
}

// TestScheduler_RunsReplayOnTick verifies that a scheduled pass drains the
// mutation log without any manual trigger.
func TestScheduler_RunsReplayOnTick(t *testing.T) {
	mem := kv.NewMemory()
	logger := discardLogger()
	mutlog := store.NewMutationLog(mem, logger)
	trips := store.NewTripStore(mem, mutlog, logger)
	ctx := context.Background()

	_, err := trips.SaveTrip(ctx, domain.Trip{Name: "Tick", Destination: "Goa", Travelers: 1})
	require.NoError(t, err)
	require.Len(t, mutlog.Entries(ctx), 1)

	r := recon.NewReconciler(mutlog, &replayRecorder{}, logger)
	s, err := recon.StartScheduler(r, "@every 10ms", logger)
	require.NoError(t, err)
	defer s.Stop()

	require.Eventually(t, func() bool {
		return len(mutlog.Entries(ctx)) == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Empty(t, mutlog.Entries(ctx))
}
