package review

import (
	"context"
	"errors"
	"fmt"

	"allservices/models"
	"allservices/utils"

	"go.uber.org/zap"
)

// MeanRating returns the arithmetic mean of the given reviews'
// ratings, or 0 when there are none. The recompute is always a full
// pass over the current review set, so re-running it any number of
// times with an unchanged set yields the same aggregate.
func MeanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, rev := range reviews {
		sum += rev.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// recomputeService rewrites the denormalized rating fields on a
// catalog entry from the full set of its reviews.
func (s *DefaultReviewService) recomputeService(ctx context.Context, serviceID string) error {
	return s.withEntityLock(ctx, "rating:service:"+serviceID, func(ctx context.Context) error {
		reviews, err := s.Repo.ListByService(ctx, serviceID)
		if err != nil {
			return fmt.Errorf("failed to list reviews for service %s: %w", serviceID, err)
		}
		return s.ServiceRepo.UpdateAggregateRating(ctx, serviceID, MeanRating(reviews), len(reviews))
	})
}

// recomputeProvider rewrites the denormalized rating fields on an
// identity entry from the full set of reviews naming that provider.
func (s *DefaultReviewService) recomputeProvider(ctx context.Context, providerID string) error {
	return s.withEntityLock(ctx, "rating:provider:"+providerID, func(ctx context.Context) error {
		reviews, err := s.Repo.ListByProvider(ctx, providerID)
		if err != nil {
			return fmt.Errorf("failed to list reviews for provider %s: %w", providerID, err)
		}
		return s.UserRepo.UpdateAggregateRating(ctx, providerID, MeanRating(reviews), len(reviews))
	})
}

// withEntityLock serializes fn per entity key so concurrent recomputes
// for the same service or provider do not interleave their
// read-mean-write cycles. If the lock cannot be acquired within its
// retry budget the recompute runs unlocked: the full recompute is
// idempotent, so a later write converges the aggregate.
func (s *DefaultReviewService) withEntityLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if s.Locker == nil {
		return fn(ctx)
	}
	err := s.Locker.WithLock(ctx, key, fn)
	if errors.Is(err, utils.ErrLockNotAcquired) {
		utils.GetLogger().Warn("Rating recompute proceeding without lock",
			zap.String("key", key))
		return fn(ctx)
	}
	return err
}
