package user

import (
	"context"
	"fmt"

	"allservices/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByID retrieves a user by ID.
func (s *DefaultUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile updates non-nil profile fields using a partial update.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*models.User, error) {
	fields := bson.M{}
	if patch.Name != nil && *patch.Name != "" {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil && *patch.Phone != "" {
		fields["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		fields["address"] = *patch.Address
	}
	if patch.ProfilePhoto != nil {
		fields["profilePhoto"] = *patch.ProfilePhoto
	}
	if patch.Bio != nil {
		fields["bio"] = *patch.Bio
	}

	if len(fields) == 0 {
		return s.GetByID(ctx, userID)
	}

	if err := s.Repo.Update(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetByID(ctx, userID)
}

// ListProviders retrieves all provider accounts.
func (s *DefaultUserService) ListProviders(ctx context.Context) ([]models.User, error) {
	providers, err := s.Repo.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// GetProvider retrieves a single provider account.
func (s *DefaultUserService) GetProvider(ctx context.Context, providerID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	if u == nil || !u.IsProvider() {
		return nil, ErrUserNotFound
	}
	return u, nil
}
