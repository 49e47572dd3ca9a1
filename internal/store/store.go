// Package store implements the persistent record store for trips and
// reviews, plus the append-only mutation log. Every collection is
// serialized as one JSON blob in the backing kv.Store, and every mutating
// call re-serializes the whole affected collection (no partial writes).
//
// Read operations are tolerant of a missing or corrupted backing blob:
// they log the anomaly and behave as if the collection were empty. There is
// no recovery path for writes, so persistence failures are reported upward.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/kv"
)

// Keys under which each collection blob is stored.
const (
	tripsKey     = "trips"
	reviewsKey   = "reviews"
	mutationsKey = "mutation_log"
)

// loadCollection reads and deserializes the blob stored under key.
// An absent blob yields an empty slice. A backend read error or an
// unparseable blob is logged and also yields an empty slice — reads never
// fail, which is the accepted data-loss tradeoff for corrupted storage.
func loadCollection[T any](ctx context.Context, s kv.Store, key string, logger *slog.Logger) []T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "backing store read failed, treating collection as empty",
			"key", key, "error", err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.WarnContext(ctx, "backing blob is corrupted, treating collection as empty",
			"key", key, "error", fmt.Errorf("%w: %v", domain.ErrStorageCorrupted, err))
		return []T{}
	}
	return items
}

// saveCollection serializes items and overwrites the blob stored under key.
func saveCollection[T any](ctx context.Context, s kv.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: marshal %q: %w", key, err)
	}
	if err := s.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("store: persist %q: %w", key, err)
	}
	return nil
}
