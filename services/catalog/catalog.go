package catalog

import (
	"context"
	"fmt"

	serviceRepo "allservices/database/repository/service"
	"allservices/models"
	"allservices/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Create publishes a new listing for the given provider.
func (s *DefaultCatalogService) Create(ctx context.Context, providerID string, input CreateInput) (*models.Service, error) {
	if input.Name == "" || input.Category == "" || input.Description == "" || input.Price <= 0 {
		return nil, ErrMissingFields
	}
	if !models.ValidCategory(input.Category) {
		return nil, ErrInvalidCategory
	}
	priceType := input.PriceType
	if priceType == "" {
		priceType = models.PriceTypeFixed
	} else if !models.ValidPriceType(priceType) {
		return nil, ErrInvalidPriceType
	}

	svc := &models.Service{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Category:     input.Category,
		Description:  input.Description,
		ProviderID:   providerID,
		Price:        input.Price,
		PriceType:    priceType,
		Images:       input.Images,
		WorkSamples:  input.WorkSamples,
		Availability: input.Availability,
		IsActive:     true,
	}

	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	utils.GetLogger().Info("Service created",
		zap.String("serviceID", svc.ID),
		zap.String("providerID", providerID),
		zap.String("category", svc.Category),
	)
	return svc, nil
}

// GetByID retrieves a single listing.
func (s *DefaultCatalogService) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// List retrieves listings matching the filter; only active listings
// are returned.
func (s *DefaultCatalogService) List(ctx context.Context, filter serviceRepo.Filter) ([]models.Service, error) {
	filter.ActiveOnly = true
	services, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// ListByProvider retrieves every listing a provider has published,
// active or not.
func (s *DefaultCatalogService) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	services, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider services: %w", err)
	}
	return services, nil
}

// ListByCategory retrieves active listings in a category.
func (s *DefaultCatalogService) ListByCategory(ctx context.Context, category string) ([]models.Service, error) {
	services, err := s.Repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list services by category: %w", err)
	}
	return services, nil
}

// Search retrieves active listings matching the keyword.
func (s *DefaultCatalogService) Search(ctx context.Context, keyword string) ([]models.Service, error) {
	services, err := s.Repo.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	return services, nil
}

// Update applies an owner-only patch. Rating and totalReviews can
// never travel through here.
func (s *DefaultCatalogService) Update(ctx context.Context, serviceID, actorID string, patch UpdateInput) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	if svc.ProviderID != actorID {
		return nil, ErrNotOwner
	}

	fields := bson.M{}
	if patch.Name != nil && *patch.Name != "" {
		fields["name"] = *patch.Name
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			return nil, ErrInvalidCategory
		}
		fields["category"] = *patch.Category
	}
	if patch.Description != nil && *patch.Description != "" {
		fields["description"] = *patch.Description
	}
	if patch.Price != nil && *patch.Price > 0 {
		fields["price"] = *patch.Price
	}
	if patch.PriceType != nil {
		if !models.ValidPriceType(*patch.PriceType) {
			return nil, ErrInvalidPriceType
		}
		fields["priceType"] = *patch.PriceType
	}
	if patch.Images != nil {
		fields["images"] = patch.Images
	}
	if patch.WorkSamples != nil {
		fields["workSamples"] = patch.WorkSamples
	}
	if patch.Availability != nil {
		fields["availability"] = *patch.Availability
	}
	if patch.IsActive != nil {
		fields["isActive"] = *patch.IsActive
	}

	if len(fields) == 0 {
		return svc, nil
	}

	if err := s.Repo.Update(ctx, serviceID, fields); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.GetByID(ctx, serviceID)
}

// Delete removes an owner's listing.
func (s *DefaultCatalogService) Delete(ctx context.Context, serviceID, actorID string) error {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return ErrServiceNotFound
	}
	if svc.ProviderID != actorID {
		return ErrNotOwner
	}

	if err := s.Repo.Delete(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
