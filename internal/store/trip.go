package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/kv"
)

// TripStore is the durable CRUD store for trips. It owns the trip collection
// exclusively: all mutations pass through it, and each one also lands in the
// mutation log for later reconciliation.
type TripStore struct {
	mu     sync.Mutex
	kv     kv.Store
	mutlog *MutationLog
	logger *slog.Logger
	now    func() time.Time
}

// NewTripStore constructs a TripStore over the given backing store.
// Mutations are recorded in mutlog for the reconciler.
func NewTripStore(s kv.Store, mutlog *MutationLog, logger *slog.Logger) *TripStore {
	return &TripStore{kv: s, mutlog: mutlog, logger: logger, now: time.Now}
}

// WithClock replaces the store's time source. Test hook.
func (s *TripStore) WithClock(now func() time.Time) *TripStore {
	s.now = now
	return s
}

// SaveTrip validates and persists a new trip. The id and created_at are
// assigned here and are immutable afterwards; any values supplied by the
// caller for them are ignored.
//
// When the backing store rejects the write, the constructed record is still
// returned alongside the error so the caller can surface it or retry.
func (s *TripStore) SaveTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	trip.ID = uuid.New()
	trip.CreatedAt = s.now().UTC()
	if trip.Status == "" {
		trip.Status = domain.TripStatusPlanning
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trips := loadCollection[domain.Trip](ctx, s.kv, tripsKey, s.logger)
	trips = append(trips, trip)

	if err := saveCollection(ctx, s.kv, tripsKey, trips); err != nil {
		return trip, fmt.Errorf("store.TripStore.SaveTrip: %w", err)
	}

	s.logMutation(ctx, domain.MutationCreate, trip)
	return trip, nil
}

// GetAllTrips returns every stored trip. A missing or corrupted backing
// blob yields an empty slice, never an error.
func (s *TripStore) GetAllTrips(ctx context.Context) []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection[domain.Trip](ctx, s.kv, tripsKey, s.logger)
}

// GetTrip returns the trip with the given id.
// Returns domain.ErrNotFound when no trip matches.
func (s *TripStore) GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	for _, t := range s.GetAllTrips(ctx) {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("store.TripStore.GetTrip: %w", domain.ErrNotFound)
}

// UpdateTrip shallow-merges the set fields of update into the stored trip
// and persists the collection. Returns domain.ErrNotFound when no trip
// matches, domain.ErrValidation when the merged record is invalid.
func (s *TripStore) UpdateTrip(ctx context.Context, id uuid.UUID, update domain.TripUpdate) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := loadCollection[domain.Trip](ctx, s.kv, tripsKey, s.logger)
	idx := -1
	for i, t := range trips {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Trip{}, fmt.Errorf("store.TripStore.UpdateTrip: %w", domain.ErrNotFound)
	}

	merged := update.Apply(trips[idx])
	if err := validateTrip(merged); err != nil {
		return domain.Trip{}, err
	}
	trips[idx] = merged

	if err := saveCollection(ctx, s.kv, tripsKey, trips); err != nil {
		return merged, fmt.Errorf("store.TripStore.UpdateTrip: %w", err)
	}

	s.logMutation(ctx, domain.MutationUpdate, merged)
	return merged, nil
}

// DeleteTrip removes the trip with the given id. Returns true when a record
// was removed, false when nothing matched (the collection is untouched).
// A delete mutation entry is appended only on actual removal.
func (s *TripStore) DeleteTrip(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := loadCollection[domain.Trip](ctx, s.kv, tripsKey, s.logger)
	remaining := trips[:0:0]
	for _, t := range trips {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(trips) {
		return false, nil
	}

	if err := saveCollection(ctx, s.kv, tripsKey, remaining); err != nil {
		return false, fmt.Errorf("store.TripStore.DeleteTrip: %w", err)
	}

	s.logMutation(ctx, domain.MutationDelete, map[string]string{"id": id.String()})
	return true, nil
}

// logMutation appends to the mutation log. A failed append does not fail the
// primary operation — the record is already persisted — but it is logged
// since that entry is lost to reconciliation.
func (s *TripStore) logMutation(ctx context.Context, action domain.MutationAction, payload any) {
	if s.mutlog == nil {
		return
	}
	if err := s.mutlog.Append(ctx, domain.EntityTrip, action, payload); err != nil {
		s.logger.WarnContext(ctx, "mutation log append failed",
			"entity", domain.EntityTrip, "action", action, "error", err)
	}
}

// validateTrip enforces the trip invariants shared by save and update.
//   - Name and Destination must be non-empty (whitespace-only rejected).
//   - Travelers must be >= 1.
//   - Budget, when set, must be a known tier.
//   - Status, when set, must be a known lifecycle tag.
func validateTrip(t domain.Trip) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(t.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if t.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}
	switch t.Budget {
	case "", domain.BudgetTierBudget, domain.BudgetTierMedium, domain.BudgetTierLuxury:
	default:
		return fmt.Errorf("%w: unknown budget tier %q", domain.ErrValidation, t.Budget)
	}
	switch t.Status {
	case "", domain.TripStatusPlanning, domain.TripStatusSaved:
	default:
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, t.Status)
	}
	return nil
}
