package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// Unavailable implements both remote interfaces by failing every call with
// domain.ErrRemoteUnavailable. It is wired when no remote backend is
// configured, which pushes every operation onto the offline path without
// special-casing a nil service anywhere.
type Unavailable struct{}

func (Unavailable) err(op string) error {
	return fmt.Errorf("remote.Unavailable.%s: %w", op, domain.ErrRemoteUnavailable)
}

func (u Unavailable) ListTrips(context.Context, string, int) ([]domain.Trip, error) {
	return nil, u.err("ListTrips")
}

func (u Unavailable) CreateTrip(context.Context, domain.Trip) (domain.Trip, error) {
	return domain.Trip{}, u.err("CreateTrip")
}

func (u Unavailable) UpdateTrip(context.Context, uuid.UUID, domain.TripUpdate) (domain.Trip, error) {
	return domain.Trip{}, u.err("UpdateTrip")
}

func (u Unavailable) DeleteTrip(context.Context, uuid.UUID) error {
	return u.err("DeleteTrip")
}

func (u Unavailable) ListReviews(context.Context, string, int) ([]domain.Review, error) {
	return nil, u.err("ListReviews")
}

func (u Unavailable) CreateReview(context.Context, domain.Review) (domain.Review, error) {
	return domain.Review{}, u.err("CreateReview")
}

func (u Unavailable) ListDestinations(context.Context, string, int) ([]domain.Destination, error) {
	return nil, u.err("ListDestinations")
}

func (u Unavailable) ListPackages(context.Context, string, int) ([]domain.Package, error) {
	return nil, u.err("ListPackages")
}

func (u Unavailable) Invoke(context.Context, string, InvokeOptions) (json.RawMessage, error) {
	return nil, u.err("Invoke")
}

var (
	_ EntityService     = Unavailable{}
	_ GenerativeService = Unavailable{}
)
