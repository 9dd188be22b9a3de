package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	courtserrors "courtly/internal/courts/errors"
	"courtly/pkg/config"
	"courtly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Courts"
)

type CourtRepository interface {
	Create(ctx context.Context, court *model.Court) error
	FindByID(ctx context.Context, id string) (*model.Court, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Court, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*model.Court, error)
	Update(ctx context.Context, id string, court *model.Court) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoCourtRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoCourtRepository(cfg *config.Config) CourtRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoCourtRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoCourtRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoCourtRepository) Create(ctx context.Context, court *model.Court) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	court.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, court)
	if err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		court.ID = oid.Hex()
	}
	return nil
}

func (r *mongoCourtRepository) FindByID(ctx context.Context, id string) (*model.Court, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", courtserrors.ErrInvalidID, id)
	}

	var court model.Court
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&court)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, courtserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find court: %w", err)
	}

	return &court, nil
}

func (r *mongoCourtRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Court, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []*model.Court
	if err = cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}

	return courts, nil
}

func (r *mongoCourtRepository) FindByOwner(ctx context.Context, ownerID string) ([]*model.Court, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find courts by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []*model.Court
	if err = cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}

	return courts, nil
}

func (r *mongoCourtRepository) Update(ctx context.Context, id string, court *model.Court) (*mongo.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", courtserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":         court.Name,
			"sport":        court.Sport,
			"hourly_rate":  court.HourlyRate,
			"opening_time": court.OpeningTime,
			"closing_time": court.ClosingTime,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update court: %w", err)
	}

	if result.MatchedCount == 0 {
		return nil, courtserrors.ErrNotFound
	}

	return result, nil
}

func (r *mongoCourtRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", courtserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}

	if result.DeletedCount == 0 {
		return courtserrors.ErrNotFound
	}

	return nil
}

func (r *mongoCourtRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count courts: %w", err)
	}

	return count, nil
}
