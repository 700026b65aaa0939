package serviceRepo

import (
	"context"

	"allservices/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter narrows catalog listings. Zero values mean "no constraint".
type Filter struct {
	Category  string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Search    string
	// ActiveOnly restricts results to listings with isActive=true.
	ActiveOnly bool
}

// ServiceRepository abstracts the Catalog Store. Aggregate rating
// fields are written only through UpdateAggregateRating.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, filter Filter) ([]models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	ListByCategory(ctx context.Context, category string) ([]models.Service, error)
	Search(ctx context.Context, keyword string) ([]models.Service, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	UpdateAggregateRating(ctx context.Context, id string, rating float64, totalReviews int) error
}
