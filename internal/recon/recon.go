// Package recon replays the mutation log against the remote entity service
// once it is reachable. Conflict policy is last-write-wins: the local
// payload overwrites whatever the remote holds, and replayed deletes ignore
// a remote not-found. Entries are replayed in insertion order; on a
// persistent failure the unreplayed suffix is pushed back onto the log and
// the pass stops, to be retried on the next schedule tick.
package recon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/remote"
	"github.com/asharma/yatra-planner/backend/internal/store"
)

// Reconciler drains the mutation log and replays it remotely.
// Wrap the entity service in remote.WithRetry so transient blips do not
// abort a whole pass.
type Reconciler struct {
	mutlog *store.MutationLog
	entity remote.EntityService
	logger *slog.Logger
}

// NewReconciler constructs a Reconciler over the given log and service.
func NewReconciler(mutlog *store.MutationLog, entity remote.EntityService, logger *slog.Logger) *Reconciler {
	return &Reconciler{mutlog: mutlog, entity: entity, logger: logger}
}

// Replay drains the log and replays each entry in FIFO order.
// Returns the number of entries successfully replayed. On failure the
// unreplayed suffix (including the failing entry) is requeued.
func (r *Reconciler) Replay(ctx context.Context) (int, error) {
	entries, err := r.mutlog.Drain(ctx)
	if err != nil {
		return 0, fmt.Errorf("recon.Reconciler.Replay: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	for i, entry := range entries {
		if err := r.replayOne(ctx, entry); err != nil {
			if reqErr := r.mutlog.Requeue(ctx, entries[i:]); reqErr != nil {
				r.logger.ErrorContext(ctx, "failed to requeue unreplayed mutations; entries lost",
					"count", len(entries)-i, "error", reqErr)
			}
			return i, fmt.Errorf("recon.Reconciler.Replay: entry %d/%d: %w", i+1, len(entries), err)
		}
	}

	r.logger.InfoContext(ctx, "mutation log replayed", "count", len(entries))
	return len(entries), nil
}

// replayOne applies a single mutation entry to the remote service.
// Malformed entries are logged and skipped rather than poisoning the queue.
func (r *Reconciler) replayOne(ctx context.Context, entry domain.MutationEntry) error {
	switch entry.EntityType {
	case domain.EntityTrip:
		return r.replayTrip(ctx, entry)
	case domain.EntityReview:
		return r.replayReview(ctx, entry)
	default:
		r.logger.WarnContext(ctx, "skipping mutation with unknown entity type",
			"entity", entry.EntityType, "action", entry.Action)
		return nil
	}
}

func (r *Reconciler) replayTrip(ctx context.Context, entry domain.MutationEntry) error {
	switch entry.Action {
	case domain.MutationCreate:
		var trip domain.Trip
		if err := json.Unmarshal(entry.Payload, &trip); err != nil {
			r.logger.WarnContext(ctx, "skipping unparseable trip create", "error", err)
			return nil
		}
		_, err := r.entity.CreateTrip(ctx, trip)
		return err

	case domain.MutationUpdate:
		var trip domain.Trip
		if err := json.Unmarshal(entry.Payload, &trip); err != nil {
			r.logger.WarnContext(ctx, "skipping unparseable trip update", "error", err)
			return nil
		}
		_, err := r.entity.UpdateTrip(ctx, trip.ID, overwriteUpdate(trip))
		return err

	case domain.MutationDelete:
		id, ok := deleteID(entry.Payload)
		if !ok {
			r.logger.WarnContext(ctx, "skipping trip delete without id")
			return nil
		}
		err := r.entity.DeleteTrip(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil // already gone remotely; delete converged
		}
		return err

	default:
		r.logger.WarnContext(ctx, "skipping trip mutation with unknown action", "action", entry.Action)
		return nil
	}
}

func (r *Reconciler) replayReview(ctx context.Context, entry domain.MutationEntry) error {
	if entry.Action != domain.MutationCreate {
		r.logger.WarnContext(ctx, "skipping review mutation with unsupported action", "action", entry.Action)
		return nil
	}
	var review domain.Review
	if err := json.Unmarshal(entry.Payload, &review); err != nil {
		r.logger.WarnContext(ctx, "skipping unparseable review create", "error", err)
		return nil
	}
	_, err := r.entity.CreateReview(ctx, review)
	return err
}

// overwriteUpdate converts a full local record into a partial update with
// every mutable field set — the wire form of last-write-wins.
func overwriteUpdate(t domain.Trip) domain.TripUpdate {
	return domain.TripUpdate{
		Name:                &t.Name,
		Destination:         &t.Destination,
		FromLocation:        &t.FromLocation,
		Duration:            &t.Duration,
		Travelers:           &t.Travelers,
		Budget:              &t.Budget,
		CustomBudget:        t.CustomBudget,
		TransportMode:       &t.TransportMode,
		AdditionalLocations: &t.AdditionalLocations,
		AISuggestions:       &t.AISuggestions,
		Status:              &t.Status,
	}
}

// deleteID extracts the record id from a delete payload {"id": "..."}.
func deleteID(payload json.RawMessage) (uuid.UUID, bool) {
	var body struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.ID == uuid.Nil {
		return uuid.Nil, false
	}
	return body.ID, true
}
