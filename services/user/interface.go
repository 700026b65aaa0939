package user

import (
	"context"

	userRepo "allservices/database/repository/user"
	"allservices/models"
)

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// ProfilePatch is a partial update of profile fields.
type ProfilePatch struct {
	Name         *string         `json:"name"`
	Phone        *string         `json:"phone"`
	Address      *models.Address `json:"address"`
	ProfilePhoto *string         `json:"profilePhoto"`
	Bio          *string         `json:"bio"`
}

// AuthResponse is returned by Register and Authenticate.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService defines business logic for identity operations.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*models.User, error)
	ListProviders(ctx context.Context) ([]models.User, error)
	GetProvider(ctx context.Context, providerID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
