package booking

import (
	"context"
	"fmt"

	"allservices/models"
	"allservices/utils"

	"go.uber.org/zap"
)

// UpdateStatus moves a booking to newStatus. Cancellation may be
// requested by either party of the booking; every other target status
// is reserved for the provider. Only enum membership is validated:
// the pending -> confirmed -> completed progression is the expected
// path but is not enforced as a transition graph.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, actorID, newStatus string) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if newStatus == models.BookingCancelled {
		if !isBookingOwner(actorID, booking) {
			return nil, ErrNotAuthorized
		}
	} else if !isBookingProvider(actorID, booking) {
		return nil, ErrNotAuthorized
	}

	updated, err := s.Repo.SetStatus(ctx, bookingID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	utils.GetLogger().Info("Booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("actorID", actorID),
		zap.String("status", newStatus),
	)
	return updated, nil
}

// Cancel is a convenience wrapper for UpdateStatus(..., cancelled).
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	return s.UpdateStatus(ctx, bookingID, actorID, models.BookingCancelled)
}
