package bookingRepo

import (
	"context"

	"allservices/models"
)

// BookingRepository owns booking storage. Bookings are never deleted:
// the only mutation after creation is SetStatus.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	SetStatus(ctx context.Context, id, status string) (*models.Booking, error)
}
