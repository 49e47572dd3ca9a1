package remote

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// RetryingEntityService decorates an EntityService with exponential-backoff
// retries for transient failures. Unavailability and timeouts are retried;
// malformed responses, not-found, and validation failures are not, since
// repeating those calls cannot change the outcome.
//
// The reconciler wraps its entity service in this decorator so a brief
// network blip does not abort a whole replay pass.
type RetryingEntityService struct {
	inner      EntityService
	maxRetries uint64
	baseDelay  time.Duration
}

// WithRetry wraps svc so each call is attempted up to maxRetries extra times
// with exponential backoff starting at baseDelay.
func WithRetry(svc EntityService, maxRetries uint64, baseDelay time.Duration) *RetryingEntityService {
	return &RetryingEntityService{inner: svc, maxRetries: maxRetries, baseDelay: baseDelay}
}

// do runs fn with the decorator's backoff policy.
func (s *RetryingEntityService) do(ctx context.Context, fn func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.baseDelay))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if transient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// transient reports whether err is worth retrying.
func transient(err error) bool {
	return errors.Is(err, domain.ErrRemoteUnavailable) || errors.Is(err, domain.ErrRemoteTimeout)
}

func (s *RetryingEntityService) ListTrips(ctx context.Context, sortKey string, limit int) ([]domain.Trip, error) {
	var out []domain.Trip
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.ListTrips(ctx, sortKey, limit)
		return innerErr
	})
	return out, err
}

func (s *RetryingEntityService) CreateTrip(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	var out domain.Trip
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.CreateTrip(ctx, trip)
		return innerErr
	})
	return out, err
}

func (s *RetryingEntityService) UpdateTrip(ctx context.Context, id uuid.UUID, update domain.TripUpdate) (domain.Trip, error) {
	var out domain.Trip
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.UpdateTrip(ctx, id, update)
		return innerErr
	})
	return out, err
}

func (s *RetryingEntityService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return s.do(ctx, func(ctx context.Context) error {
		return s.inner.DeleteTrip(ctx, id)
	})
}

func (s *RetryingEntityService) ListReviews(ctx context.Context, sortKey string, limit int) ([]domain.Review, error) {
	var out []domain.Review
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.ListReviews(ctx, sortKey, limit)
		return innerErr
	})
	return out, err
}

func (s *RetryingEntityService) CreateReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	var out domain.Review
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.CreateReview(ctx, review)
		return innerErr
	})
	return out, err
}

func (s *RetryingEntityService) ListDestinations(ctx context.Context, sortKey string, limit int) ([]domain.Destination, error) {
	var out []domain.Destination
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.ListDestinations(ctx, sortKey, limit)
		return innerErr
	})
	return out, err
}

func (s *RetryingEntityService) ListPackages(ctx context.Context, sortKey string, limit int) ([]domain.Package, error) {
	var out []domain.Package
	err := s.do(ctx, func(ctx context.Context) error {
		var innerErr error
		out, innerErr = s.inner.ListPackages(ctx, sortKey, limit)
		return innerErr
	})
	return out, err
}

var _ EntityService = (*RetryingEntityService)(nil)
