package booking

import (
	"context"

	bookingRepo "allservices/database/repository/booking"
	serviceRepo "allservices/database/repository/service"
	"allservices/models"
)

// CreateInput carries the client-supplied fields for a new booking.
// ProviderID is never accepted from the caller; it is derived from
// the referenced service.
type CreateInput struct {
	ServiceID     string         `json:"serviceId"`
	Date          string         `json:"date"`
	StartTime     string         `json:"startTime"`
	EndTime       string         `json:"endTime"`
	Location      models.Address `json:"location"`
	Description   string         `json:"description"`
	TotalPrice    float64        `json:"totalPrice"`
	PaymentMethod string         `json:"paymentMethod"`
}

// BookingService is the Booking Ledger: it owns booking records and
// the rules for moving them between statuses.
type BookingService interface {
	Create(ctx context.Context, clientID string, input CreateInput) (*models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, actorID, newStatus string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
}
