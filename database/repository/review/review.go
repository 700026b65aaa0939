package reviewRepo

import (
	"context"
	"errors"

	"allservices/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateBooking is returned by Create when a review already
// exists for the same booking.
var ErrDuplicateBooking = errors.New("review already exists for this booking")

// ReviewRepository owns review storage. Exactly one review may exist
// per booking; Create enforces that through a unique index.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	ListByService(ctx context.Context, serviceID string) ([]models.Review, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Review, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	IncrementHelpful(ctx context.Context, id string) (*models.Review, error)
}
