package booking

import (
	"context"
	"fmt"

	"allservices/models"
	"allservices/utils"

	"go.uber.org/zap"
)

// Create validates the input, resolves the referenced service and
// persists a new booking in pending status. The provider is always
// the one published on the service; the caller cannot choose it.
func (s *DefaultBookingService) Create(ctx context.Context, clientID string, input CreateInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if input.ServiceID == "" || input.Date == "" || input.StartTime == "" ||
		input.EndTime == "" || input.TotalPrice <= 0 {
		return nil, ErrMissingFields
	}
	if input.PaymentMethod != "" && !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPayment
	}

	svc, err := s.ServiceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	booking := &models.Booking{
		ServiceID:     input.ServiceID,
		ClientID:      clientID,
		ProviderID:    svc.ProviderID,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Location:      input.Location,
		Description:   input.Description,
		TotalPrice:    input.TotalPrice,
		PaymentMethod: input.PaymentMethod,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", booking.ServiceID),
		zap.String("clientID", booking.ClientID),
		zap.String("providerID", booking.ProviderID),
	)
	return booking, nil
}

// GetByID retrieves a single booking.
func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// ListByClient retrieves all bookings made by a client.
func (s *DefaultBookingService) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client bookings: %w", err)
	}
	return bookings, nil
}

// ListByProvider retrieves all bookings addressed to a provider.
func (s *DefaultBookingService) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider bookings: %w", err)
	}
	return bookings, nil
}
