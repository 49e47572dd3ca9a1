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

// ReviewStore is the durable store for destination reviews.
// Reviews are create-and-read only; there is no local update or delete.
type ReviewStore struct {
	mu     sync.Mutex
	kv     kv.Store
	mutlog *MutationLog
	logger *slog.Logger
	now    func() time.Time
}

// NewReviewStore constructs a ReviewStore over the given backing store.
func NewReviewStore(s kv.Store, mutlog *MutationLog, logger *slog.Logger) *ReviewStore {
	return &ReviewStore{kv: s, mutlog: mutlog, logger: logger, now: time.Now}
}

// WithClock replaces the store's time source. Test hook.
func (s *ReviewStore) WithClock(now func() time.Time) *ReviewStore {
	s.now = now
	return s
}

// SaveReview validates and persists a new review. The id and created_at are
// assigned here; helpful_count always starts at zero regardless of input.
func (s *ReviewStore) SaveReview(ctx context.Context, review domain.Review) (domain.Review, error) {
	if strings.TrimSpace(review.Destination) == "" {
		return domain.Review{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	review.ID = uuid.New()
	review.CreatedAt = s.now().UTC()
	review.HelpfulCount = 0

	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := loadCollection[domain.Review](ctx, s.kv, reviewsKey, s.logger)
	reviews = append(reviews, review)

	if err := saveCollection(ctx, s.kv, reviewsKey, reviews); err != nil {
		return review, fmt.Errorf("store.ReviewStore.SaveReview: %w", err)
	}

	if s.mutlog != nil {
		if err := s.mutlog.Append(ctx, domain.EntityReview, domain.MutationCreate, review); err != nil {
			s.logger.WarnContext(ctx, "mutation log append failed",
				"entity", domain.EntityReview, "action", domain.MutationCreate, "error", err)
		}
	}
	return review, nil
}

// GetAllReviews returns every stored review. A missing or corrupted backing
// blob yields an empty slice, never an error.
func (s *ReviewStore) GetAllReviews(ctx context.Context) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadCollection[domain.Review](ctx, s.kv, reviewsKey, s.logger)
}

// GetReviewsForDestination returns reviews whose destination contains the
// given substring, matched case-insensitively.
func (s *ReviewStore) GetReviewsForDestination(ctx context.Context, destination string) []domain.Review {
	needle := strings.ToLower(strings.TrimSpace(destination))

	matched := []domain.Review{}
	for _, r := range s.GetAllReviews(ctx) {
		if strings.Contains(strings.ToLower(r.Destination), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
