package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/kv"
	"github.com/asharma/yatra-planner/backend/internal/store"
)

func newMutationLog(t *testing.T) *store.MutationLog {
	t.Helper()
	return store.NewMutationLog(kv.NewMemory(), discardLogger())
}

func TestMutationLog_AppendPreservesOrder(t *testing.T) {
	mutlog := newMutationLog(t)
	ctx := context.Background()

	for i, action := range []domain.MutationAction{
		domain.MutationCreate, domain.MutationUpdate, domain.MutationDelete,
	} {
		require.NoError(t, mutlog.Append(ctx, domain.EntityTrip, action, map[string]int{"seq": i}))
	}

	entries := mutlog.Entries(ctx)
	require.Len(t, entries, 3)
	for i, e := range entries {
		var payload map[string]int
		require.NoError(t, json.Unmarshal(e.Payload, &payload))
		assert.Equal(t, i, payload["seq"])
	}
}

func TestMutationLog_AppendStampsUTC(t *testing.T) {
	mutlog := newMutationLog(t)
	ctx := context.Background()

	before := time.Now().UTC()
	require.NoError(t, mutlog.Append(ctx, domain.EntityReview, domain.MutationCreate, "x"))
	after := time.Now().UTC()

	entries := mutlog.Entries(ctx)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Timestamp.Before(before))
	assert.False(t, entries[0].Timestamp.After(after))
}

// TestMutationLog_DrainReturnsAndClears verifies that Drain hands back the
// pending entries in order and leaves the log empty.
func TestMutationLog_DrainReturnsAndClears(t *testing.T) {
	mutlog := newMutationLog(t)
	ctx := context.Background()

	require.NoError(t, mutlog.Append(ctx, domain.EntityTrip, domain.MutationCreate, "a"))
	require.NoError(t, mutlog.Append(ctx, domain.EntityTrip, domain.MutationUpdate, "b"))

	drained, err := mutlog.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, drained, 2)
	assert.Equal(t, domain.MutationCreate, drained[0].Action)
	assert.Equal(t, domain.MutationUpdate, drained[1].Action)

	assert.Empty(t, mutlog.Entries(ctx))
}

func TestMutationLog_Clear(t *testing.T) {
	mutlog := newMutationLog(t)
	ctx := context.Background()

	require.NoError(t, mutlog.Append(ctx, domain.EntityTrip, domain.MutationCreate, "a"))
	require.NoError(t, mutlog.Clear(ctx))

	assert.Empty(t, mutlog.Entries(ctx))
}

// TestMutationLog_RequeuePrepends verifies that requeued entries come back
// ahead of anything appended after the drain, preserving replay order.
func TestMutationLog_RequeuePrepends(t *testing.T) {
	mutlog := newMutationLog(t)
	ctx := context.Background()

	require.NoError(t, mutlog.Append(ctx, domain.EntityTrip, domain.MutationCreate, "old"))
	drained, err := mutlog.Drain(ctx)
	require.NoError(t, err)

	// a new mutation lands while the drained batch is being replayed
	require.NoError(t, mutlog.Append(ctx, domain.EntityTrip, domain.MutationUpdate, "new"))

	require.NoError(t, mutlog.Requeue(ctx, drained))

	entries := mutlog.Entries(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.MutationCreate, entries[0].Action)
	assert.Equal(t, domain.MutationUpdate, entries[1].Action)
}

func TestMutationLog_RequeueEmptyIsNoop(t *testing.T) {
	mutlog := newMutationLog(t)
	ctx := context.Background()

	require.NoError(t, mutlog.Requeue(ctx, nil))

	assert.Empty(t, mutlog.Entries(ctx))
}
