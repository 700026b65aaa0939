package userRepo

import (
	"context"

	"allservices/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository abstracts the Identity Store. Aggregate rating fields
// are written only through UpdateAggregateRating; all other mutations
// go through Update.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListProviders(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, fields bson.M) error
	UpdateAggregateRating(ctx context.Context, id string, rating float64, totalReviews int) error
}
