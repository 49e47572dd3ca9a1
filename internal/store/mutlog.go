package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/kv"
)

// MutationLog records every local create/update/delete as a timestamped,
// ordered entry for replay once the remote entity service is reachable.
// Entries are append-only FIFO; Append never touches prior entries.
type MutationLog struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewMutationLog constructs a MutationLog persisted in the given kv.Store.
func NewMutationLog(s kv.Store, logger *slog.Logger) *MutationLog {
	return &MutationLog{kv: s, logger: logger, now: time.Now}
}

// Append records one mutation at the end of the log.
// payload is the affected record, or the record id for deletes.
func (l *MutationLog) Append(ctx context.Context, entity domain.EntityType, action domain.MutationAction, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("store.MutationLog.Append: marshal payload: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := loadCollection[domain.MutationEntry](ctx, l.kv, mutationsKey, l.logger)
	entries = append(entries, domain.MutationEntry{
		EntityType: entity,
		Action:     action,
		Payload:    raw,
		Timestamp:  l.now().UTC(),
	})

	if err := saveCollection(ctx, l.kv, mutationsKey, entries); err != nil {
		return fmt.Errorf("store.MutationLog.Append: %w", err)
	}
	return nil
}

// Entries returns the pending entries in insertion order without removing them.
func (l *MutationLog) Entries(ctx context.Context) []domain.MutationEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return loadCollection[domain.MutationEntry](ctx, l.kv, mutationsKey, l.logger)
}

// Drain returns all pending entries in insertion order and clears the log.
// Callers that fail to process a suffix should push it back with Requeue.
func (l *MutationLog) Drain(ctx context.Context) ([]domain.MutationEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := loadCollection[domain.MutationEntry](ctx, l.kv, mutationsKey, l.logger)
	if err := saveCollection(ctx, l.kv, mutationsKey, []domain.MutationEntry{}); err != nil {
		return nil, fmt.Errorf("store.MutationLog.Drain: %w", err)
	}
	return entries, nil
}

// Clear discards all pending entries.
func (l *MutationLog) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := saveCollection(ctx, l.kv, mutationsKey, []domain.MutationEntry{}); err != nil {
		return fmt.Errorf("store.MutationLog.Clear: %w", err)
	}
	return nil
}

// Requeue puts entries back at the front of the log, ahead of anything
// appended since they were drained. Used by the reconciler when a replay
// pass fails partway through.
func (l *MutationLog) Requeue(ctx context.Context, entries []domain.MutationEntry) error {
	if len(entries) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := loadCollection[domain.MutationEntry](ctx, l.kv, mutationsKey, l.logger)
	merged := make([]domain.MutationEntry, 0, len(entries)+len(current))
	merged = append(merged, entries...)
	merged = append(merged, current...)

	if err := saveCollection(ctx, l.kv, mutationsKey, merged); err != nil {
		return fmt.Errorf("store.MutationLog.Requeue: %w", err)
	}
	return nil
}
