// Package handler implements the HTTP handlers for the Yatra planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, review.go, plan.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// PlannerServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or remote services.
//
// The boolean return on reads is the degraded flag: true when the result
// came from the offline path rather than the remote service.
type PlannerServicer interface {
	ListTrips(ctx context.Context) ([]domain.Trip, bool, error)
	GetTrip(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error)
	CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, update domain.TripUpdate) (domain.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	ListReviews(ctx context.Context) ([]domain.Review, bool, error)
	CreateReview(ctx context.Context, review domain.Review) (domain.Review, error)
	ReviewsForDestination(ctx context.Context, destination string) []domain.Review

	ListDestinations(ctx context.Context) ([]domain.Destination, bool, error)
	ListPackages(ctx context.Context) ([]domain.Package, bool, error)

	GeneratePlan(ctx context.Context, req domain.TripRequest) (domain.TripPlan, bool, error)
}

// Replayer triggers an on-demand reconciliation pass.
type Replayer interface {
	Replay(ctx context.Context) (int, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	planner PlannerServicer
	recon   Replayer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, recon Replayer) *Server {
	return &Server{planner: planner, recon: recon}
}

// Routes returns the API route tree. Mount it at the router root.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/{id}", s.GetTrip)
			r.Put("/{id}", s.UpdateTrip)
			r.Delete("/{id}", s.DeleteTrip)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", s.ListReviews)
			r.Post("/", s.CreateReview)
		})

		r.Post("/plan", s.GeneratePlan)
		r.Get("/destinations", s.ListDestinations)
		r.Get("/packages", s.ListPackages)
		r.Post("/reconcile", s.Reconcile)
	})

	return r
}
