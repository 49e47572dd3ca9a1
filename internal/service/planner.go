// Package service contains the planner orchestration: each operation first
// attempts the remote path and transparently falls back to local data via
// the arbitrator. Writes are offline-first — they land in the record store
// and reach the remote service later through mutation-log reconciliation.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/arbitrate"
	"github.com/asharma/yatra-planner/backend/internal/catalog"
	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/remote"
	"github.com/asharma/yatra-planner/backend/internal/store"
)

// Planner implements every UI-facing operation. List-style reads return a
// degraded flag alongside the result: true means the offline path served it.
type Planner struct {
	trips    *store.TripStore
	reviews  *store.ReviewStore
	entity   remote.EntityService
	genai    remote.GenerativeService
	logger   *slog.Logger
	planWait time.Duration // bound on a generative call before falling back
	now      func() time.Time
}

// NewPlanner constructs the planner. planWait bounds generative calls
// (8s by default); listing calls carry no timer and rely on the remote
// call's own failure signal.
func NewPlanner(trips *store.TripStore, reviews *store.ReviewStore, entity remote.EntityService, genai remote.GenerativeService, logger *slog.Logger, planWait time.Duration) *Planner {
	return &Planner{
		trips:    trips,
		reviews:  reviews,
		entity:   entity,
		genai:    genai,
		logger:   logger,
		planWait: planWait,
		now:      time.Now,
	}
}

// WithClock replaces the planner's time source. Test hook.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// ListTrips returns all trips, preferring the remote entity service and
// falling back to the local store.
func (p *Planner) ListTrips(ctx context.Context) ([]domain.Trip, bool, error) {
	return arbitrate.Execute(ctx, 0,
		func(ctx context.Context) ([]domain.Trip, error) {
			return p.entity.ListTrips(ctx, "created_at", 0)
		},
		func(ctx context.Context) ([]domain.Trip, error) {
			return p.trips.GetAllTrips(ctx), nil
		},
		p.logger)
}

// GetTrip returns one trip by id, preferring the remote listing and falling
// back to a local lookup. Returns domain.ErrNotFound when neither side has it.
func (p *Planner) GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error) {
	return arbitrate.Execute(ctx, 0,
		func(ctx context.Context) (domain.Trip, error) {
			trips, err := p.entity.ListTrips(ctx, "created_at", 0)
			if err != nil {
				return domain.Trip{}, err
			}
			for _, t := range trips {
				if t.ID == id {
					return t, nil
				}
			}
			return domain.Trip{}, fmt.Errorf("service.Planner.GetTrip: %w", domain.ErrNotFound)
		},
		func(ctx context.Context) (domain.Trip, error) {
			return p.trips.GetTrip(ctx, id)
		},
		p.logger)
}

// CreateTrip persists a new trip locally. The create reaches the remote
// service later via the mutation log.
func (p *Planner) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	created, err := p.trips.SaveTrip(ctx, trip)
	if err != nil {
		return created, fmt.Errorf("service.Planner.CreateTrip: %w", err)
	}
	return created, nil
}

// UpdateTrip applies a partial update to a stored trip.
func (p *Planner) UpdateTrip(ctx context.Context, id uuid.UUID, update domain.TripUpdate) (domain.Trip, error) {
	updated, err := p.trips.UpdateTrip(ctx, id, update)
	if err != nil {
		return updated, fmt.Errorf("service.Planner.UpdateTrip: %w", err)
	}
	return updated, nil
}

// DeleteTrip removes a stored trip. Returns domain.ErrNotFound when no trip
// matched, so handlers can map it to 404.
func (p *Planner) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	removed, err := p.trips.DeleteTrip(ctx, id)
	if err != nil {
		return fmt.Errorf("service.Planner.DeleteTrip: %w", err)
	}
	if !removed {
		return fmt.Errorf("service.Planner.DeleteTrip: %w", domain.ErrNotFound)
	}
	return nil
}

// ListReviews returns all reviews, preferring the remote entity service.
func (p *Planner) ListReviews(ctx context.Context) ([]domain.Review, bool, error) {
	return arbitrate.Execute(ctx, 0,
		func(ctx context.Context) ([]domain.Review, error) {
			return p.entity.ListReviews(ctx, "created_at", 0)
		},
		func(ctx context.Context) ([]domain.Review, error) {
			return p.reviews.GetAllReviews(ctx), nil
		},
		p.logger)
}

// CreateReview persists a new review locally.
func (p *Planner) CreateReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	created, err := p.reviews.SaveReview(ctx, review)
	if err != nil {
		return created, fmt.Errorf("service.Planner.CreateReview: %w", err)
	}
	return created, nil
}

// ReviewsForDestination returns local reviews whose destination contains the
// given substring (case-insensitive). This is a purely local read.
func (p *Planner) ReviewsForDestination(ctx context.Context, destination string) []domain.Review {
	return p.reviews.GetReviewsForDestination(ctx, destination)
}

// ListDestinations returns the destination gallery, preferring the remote
// service and falling back to the bundled reference dataset.
func (p *Planner) ListDestinations(ctx context.Context) ([]domain.Destination, bool, error) {
	return arbitrate.Execute(ctx, 0,
		func(ctx context.Context) ([]domain.Destination, error) {
			return p.entity.ListDestinations(ctx, "name", 0)
		},
		func(ctx context.Context) ([]domain.Destination, error) {
			return catalog.Destinations(), nil
		},
		p.logger)
}

// ListPackages returns the tour packages, preferring the remote service and
// falling back to the bundled reference dataset.
func (p *Planner) ListPackages(ctx context.Context) ([]domain.Package, bool, error) {
	return arbitrate.Execute(ctx, 0,
		func(ctx context.Context) ([]domain.Package, error) {
			return p.entity.ListPackages(ctx, "name", 0)
		},
		func(ctx context.Context) ([]domain.Package, error) {
			return catalog.Packages(), nil
		},
		p.logger)
}
