package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"allservices/database"
	"allservices/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.DB().Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a service by its unique ID. Returns (nil, nil)
// when no service exists with that ID.
func (r *MongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// List retrieves services matching the given filter.
func (r *MongoServiceRepo) List(ctx context.Context, filter Filter) ([]models.Service, error) {
	query := bson.M{}
	if filter.ActiveOnly {
		query["isActive"] = true
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.MinRating > 0 {
		query["rating"] = bson.M{"$gte": filter.MinRating}
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}

	return r.find(ctx, query)
}

// ListByProvider retrieves all services published by a provider.
func (r *MongoServiceRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return r.find(ctx, bson.M{"providerId": providerID})
}

// ListByCategory retrieves active services in a category.
func (r *MongoServiceRepo) ListByCategory(ctx context.Context, category string) ([]models.Service, error) {
	return r.find(ctx, bson.M{"category": category, "isActive": true})
}

// Search retrieves active services whose name, description or category
// matches the keyword, case-insensitively.
func (r *MongoServiceRepo) Search(ctx context.Context, keyword string) ([]models.Service, error) {
	regex := primitive.Regex{Pattern: keyword, Options: "i"}
	query := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"category": regex},
		},
	}
	return r.find(ctx, query)
}

func (r *MongoServiceRepo) find(ctx context.Context, query bson.M) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// Update applies a partial $set update to a service document.
func (r *MongoServiceRepo) Update(ctx context.Context, id string, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// UpdateAggregateRating overwrites the denormalized rating fields.
// Only the rating recompute calls this.
func (r *MongoServiceRepo) UpdateAggregateRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"totalReviews": totalReviews,
		"updatedAt":    time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}
