package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"allservices/database"
	"allservices/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.DB().Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One review per booking.
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "serviceId", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document, assigning an ID if missing.
// Returns ErrDuplicateBooking when the booking already has a review.
func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its unique ID. Returns (nil, nil)
// when no review exists with that ID.
func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

// ListByService retrieves all reviews referencing a service.
func (r *MongoReviewRepo) ListByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"serviceId": serviceID})
}

// ListByProvider retrieves all reviews referencing a provider.
func (r *MongoReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"providerId": providerID})
}

func (r *MongoReviewRepo) find(ctx context.Context, query bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// Update applies a partial $set update to a review document.
func (r *MongoReviewRepo) Update(ctx context.Context, id string, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update review with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}

// IncrementHelpful bumps the helpful counter and returns the updated
// review. Returns (nil, nil) when no review exists with that ID.
func (r *MongoReviewRepo) IncrementHelpful(ctx context.Context, id string) (*models.Review, error) {
	update := bson.M{
		"$inc": bson.M{"helpful": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review models.Review
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to increment helpful for review %s: %w", id, err)
	}
	return &review, nil
}
