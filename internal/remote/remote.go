// Package remote defines the interfaces of the two remote collaborators:
// the entity service (typed CRUD backend) and the generative content
// service. The planner depends only on these interfaces; the actual network
// transport lives outside this repository. Implementations should return
// the domain remote-error kinds so failures are classified correctly.
package remote

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// EntityService is the remote CRUD backend for typed records.
// Any method may fail with a network, server, or shape error; callers route
// those failures through the arbitrator rather than handling them directly.
type EntityService interface {
	ListTrips(ctx context.Context, sortKey string, limit int) ([]domain.Trip, error)
	CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, update domain.TripUpdate) (domain.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	ListReviews(ctx context.Context, sortKey string, limit int) ([]domain.Review, error)
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, error)

	ListDestinations(ctx context.Context, sortKey string, limit int) ([]domain.Destination, error)
	ListPackages(ctx context.Context, sortKey string, limit int) ([]domain.Package, error)
}

// InvokeOptions tunes a single generative call.
type InvokeOptions struct {
	// AugmentWithExternalContext asks the backend to ground the response in
	// live external data (weather, events) when available.
	AugmentWithExternalContext bool

	// ResponseSchema, when non-nil, requests structured JSON matching the
	// given schema instead of free text.
	ResponseSchema any
}

// GenerativeService is the remote AI text/JSON generation backend.
// Invoke may fail, return an unparseable body, or hang indefinitely — the
// caller is expected to bound it with a timeout via the arbitrator.
type GenerativeService interface {
	Invoke(ctx context.Context, prompt string, opts InvokeOptions) (json.RawMessage, error)
}
