package catalog

import (
	"context"

	serviceRepo "allservices/database/repository/service"
	"allservices/models"
)

// CreateInput carries the provider-supplied fields for a new listing.
type CreateInput struct {
	Name         string                    `json:"name"`
	Category     string                    `json:"category"`
	Description  string                    `json:"description"`
	Price        float64                   `json:"price"`
	PriceType    string                    `json:"priceType"`
	Images       []string                  `json:"images"`
	WorkSamples  []models.WorkSample       `json:"workSamples"`
	Availability models.WeeklyAvailability `json:"availability"`
}

// UpdateInput is a partial patch of owner-editable fields. Aggregate
// rating fields are not patchable; they belong to the rating
// recompute.
type UpdateInput struct {
	Name         *string                    `json:"name"`
	Category     *string                    `json:"category"`
	Description  *string                    `json:"description"`
	Price        *float64                   `json:"price"`
	PriceType    *string                    `json:"priceType"`
	Images       []string                   `json:"images"`
	WorkSamples  []models.WorkSample        `json:"workSamples"`
	Availability *models.WeeklyAvailability `json:"availability"`
	IsActive     *bool                      `json:"isActive"`
}

// CatalogService manages provider listings.
type CatalogService interface {
	Create(ctx context.Context, providerID string, input CreateInput) (*models.Service, error)
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	List(ctx context.Context, filter serviceRepo.Filter) ([]models.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	ListByCategory(ctx context.Context, category string) ([]models.Service, error)
	Search(ctx context.Context, keyword string) ([]models.Service, error)
	Update(ctx context.Context, serviceID, actorID string, patch UpdateInput) (*models.Service, error)
	Delete(ctx context.Context, serviceID, actorID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
