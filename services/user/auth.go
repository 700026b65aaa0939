package user

import (
	"context"
	"fmt"
	"time"

	"allservices/config"
	"allservices/models"
	"allservices/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account and returns a signed token for it.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if input.Name == "" || input.Email == "" || input.Password == "" ||
		input.Role == "" || input.Phone == "" {
		return nil, ErrMissingFields
	}
	if input.Role != models.RoleClient && input.Role != models.RoleProvider {
		return nil, ErrInvalidRole
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Phone:        input.Phone,
		Address:      models.Address{City: input.City},
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.String("userID", u.ID),
		zap.String("role", u.Role),
	)
	return &AuthResponse{Token: token, User: u}, nil
}

// Authenticate verifies credentials and returns a signed token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// issueToken signs a JWT for the user and records its hash on the
// user document and in the auth cache for fast middleware checks.
func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (string, error) {
	expiry := time.Duration(config.AppConfig.JWTExpiryHours) * time.Hour
	token, err := utils.GenerateToken(u.ID, u.Role, expiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	u.TokenHash = tokenHash
	if err := s.Repo.Update(ctx, u.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + u.ID
	if err := authCache.Set(ctx, cacheKey, tokenHash, expiry).Err(); err != nil {
		// Cache miss falls back to the user document in middleware.
		utils.GetLogger().Warn("Failed to cache auth token", zap.Error(err))
	}
	return token, nil
}
