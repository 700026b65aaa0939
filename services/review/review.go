package review

import (
	"context"
	"errors"
	"fmt"

	reviewRepo "allservices/database/repository/review"
	"allservices/models"
	"allservices/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Create validates the input against the referenced booking, persists
// the review and synchronously recomputes the service and provider
// aggregates before returning. Callers observe updated aggregates as
// soon as creation is acknowledged.
func (s *DefaultReviewService) Create(ctx context.Context, clientID string, input CreateInput) (*models.Review, error) {
	logger := utils.GetLogger()

	if input.ServiceID == "" || input.BookingID == "" || input.Rating == 0 || input.Comment == "" {
		return nil, ErrMissingFields
	}
	if !models.ValidRating(input.Rating) {
		return nil, ErrInvalidRating
	}
	for _, sub := range []int{input.WorkQuality, input.Communication, input.Punctuality} {
		if sub != 0 && !models.ValidRating(sub) {
			return nil, ErrInvalidRating
		}
	}

	booking, err := s.BookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	// Only the client of a completed booking may review it.
	if booking.ClientID != clientID || booking.Status != models.BookingCompleted {
		return nil, ErrNotAuthorized
	}
	if booking.ServiceID != input.ServiceID {
		return nil, ErrServiceMismatch
	}

	rev := &models.Review{
		ServiceID:     input.ServiceID,
		BookingID:     input.BookingID,
		ClientID:      clientID,
		ProviderID:    booking.ProviderID,
		Rating:        input.Rating,
		Comment:       input.Comment,
		WorkQuality:   input.WorkQuality,
		Communication: input.Communication,
		Punctuality:   input.Punctuality,
		Images:        input.Images,
		IsAnonymous:   input.IsAnonymous,
	}

	if err := s.Repo.Create(ctx, rev); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateBooking) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Review persistence happens-before both recomputes, which
	// happen-before the response.
	if err := s.recomputeService(ctx, rev.ServiceID); err != nil {
		return nil, fmt.Errorf("failed to update service rating: %w", err)
	}
	if err := s.recomputeProvider(ctx, rev.ProviderID); err != nil {
		return nil, fmt.Errorf("failed to update provider rating: %w", err)
	}

	logger.Info("Review created",
		zap.String("reviewID", rev.ID),
		zap.String("bookingID", rev.BookingID),
		zap.String("serviceID", rev.ServiceID),
		zap.Int("rating", rev.Rating),
	)
	return rev, nil
}

// GetByID retrieves a single review.
func (s *DefaultReviewService) GetByID(ctx context.Context, reviewID string) (*models.Review, error) {
	rev, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if rev == nil {
		return nil, ErrReviewNotFound
	}
	return rev, nil
}

// ListByService retrieves all reviews for a service.
func (s *DefaultReviewService) ListByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service reviews: %w", err)
	}
	return reviews, nil
}

// ListByProvider retrieves all reviews for a provider.
func (s *DefaultReviewService) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider reviews: %w", err)
	}
	return reviews, nil
}

// Update applies an author-only patch. When the patch changes the
// rating the service and provider aggregates are recomputed, so a
// re-rated review is never left stale in the denormalized fields.
func (s *DefaultReviewService) Update(ctx context.Context, reviewID, actorID string, patch UpdateInput) (*models.Review, error) {
	rev, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if rev == nil {
		return nil, ErrReviewNotFound
	}
	if rev.ClientID != actorID {
		return nil, ErrNotAuthor
	}

	fields := bson.M{}
	ratingChanged := false
	if patch.Rating != nil {
		if !models.ValidRating(*patch.Rating) {
			return nil, ErrInvalidRating
		}
		ratingChanged = *patch.Rating != rev.Rating
		fields["rating"] = *patch.Rating
	}
	if patch.Comment != nil {
		if *patch.Comment == "" {
			return nil, ErrMissingFields
		}
		fields["comment"] = *patch.Comment
	}
	for name, sub := range map[string]*int{
		"workQuality":   patch.WorkQuality,
		"communication": patch.Communication,
		"punctuality":   patch.Punctuality,
	} {
		if sub != nil {
			if !models.ValidRating(*sub) {
				return nil, ErrInvalidRating
			}
			fields[name] = *sub
		}
	}
	if patch.Images != nil {
		fields["images"] = patch.Images
	}
	if patch.IsAnonymous != nil {
		fields["isAnonymous"] = *patch.IsAnonymous
	}

	if len(fields) == 0 {
		return rev, nil
	}

	if err := s.Repo.Update(ctx, reviewID, fields); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if ratingChanged {
		if err := s.recomputeService(ctx, rev.ServiceID); err != nil {
			return nil, fmt.Errorf("failed to update service rating: %w", err)
		}
		if err := s.recomputeProvider(ctx, rev.ProviderID); err != nil {
			return nil, fmt.Errorf("failed to update provider rating: %w", err)
		}
	}

	updated, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated review: %w", err)
	}
	return updated, nil
}

// Delete removes an author's review and recomputes both aggregates so
// the deleted rating stops counting immediately.
func (s *DefaultReviewService) Delete(ctx context.Context, reviewID, actorID string) error {
	rev, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to get review: %w", err)
	}
	if rev == nil {
		return ErrReviewNotFound
	}
	if rev.ClientID != actorID {
		return ErrNotAuthor
	}

	if err := s.Repo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if err := s.recomputeService(ctx, rev.ServiceID); err != nil {
		return fmt.Errorf("failed to update service rating: %w", err)
	}
	if err := s.recomputeProvider(ctx, rev.ProviderID); err != nil {
		return fmt.Errorf("failed to update provider rating: %w", err)
	}

	utils.GetLogger().Info("Review deleted",
		zap.String("reviewID", reviewID),
		zap.String("actorID", actorID),
	)
	return nil
}

// MarkHelpful bumps the helpful counter on a review.
func (s *DefaultReviewService) MarkHelpful(ctx context.Context, reviewID string) (*models.Review, error) {
	rev, err := s.Repo.IncrementHelpful(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark review helpful: %w", err)
	}
	if rev == nil {
		return nil, ErrReviewNotFound
	}
	return rev, nil
}
