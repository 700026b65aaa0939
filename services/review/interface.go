package review

import (
	"context"

	bookingRepo "allservices/database/repository/booking"
	reviewRepo "allservices/database/repository/review"
	serviceRepo "allservices/database/repository/service"
	userRepo "allservices/database/repository/user"
	"allservices/models"
	"allservices/utils"
)

// CreateInput carries the client-supplied fields for a new review.
// ProviderID is never accepted from the caller; it is copied from the
// referenced booking.
type CreateInput struct {
	ServiceID     string   `json:"serviceId"`
	BookingID     string   `json:"bookingId"`
	Rating        int      `json:"rating"`
	Comment       string   `json:"comment"`
	WorkQuality   int      `json:"workQuality"`
	Communication int      `json:"communication"`
	Punctuality   int      `json:"punctuality"`
	Images        []string `json:"images"`
	IsAnonymous   bool     `json:"isAnonymous"`
}

// UpdateInput is a partial patch of author-editable fields. Nil
// pointers leave the stored value untouched.
type UpdateInput struct {
	Rating        *int     `json:"rating"`
	Comment       *string  `json:"comment"`
	WorkQuality   *int     `json:"workQuality"`
	Communication *int     `json:"communication"`
	Punctuality   *int     `json:"punctuality"`
	Images        []string `json:"images"`
	IsAnonymous   *bool    `json:"isAnonymous"`
}

// ReviewService is the Review Ledger: it owns review records, gates
// their creation on the referenced booking, and drives the rating
// recompute for the affected service and provider.
type ReviewService interface {
	Create(ctx context.Context, clientID string, input CreateInput) (*models.Review, error)
	GetByID(ctx context.Context, reviewID string) (*models.Review, error)
	ListByService(ctx context.Context, serviceID string) ([]models.Review, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Review, error)
	Update(ctx context.Context, reviewID, actorID string, patch UpdateInput) (*models.Review, error)
	Delete(ctx context.Context, reviewID, actorID string) error
	MarkHelpful(ctx context.Context, reviewID string) (*models.Review, error)
}

// DefaultReviewService is the production implementation. Locker, when
// set, serializes aggregate recomputes per entity key; a nil Locker
// runs them unserialized.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	UserRepo    userRepo.UserRepository
	Locker      utils.KeyedLocker
}
