package repository

import (
	"context"
	"time"

	"courtly/pkg/config"
	"courtly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const LockCollectionName = "Slot_locks"

// SlotLockRepository provides operations for advisory locks
type SlotLockRepository interface {
	Acquire(ctx context.Context, lock *model.SlotLock) (*model.SlotLock, error)
	Release(ctx context.Context, lockID string) error
}

type mongoSlotLockRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewSlotLockRepository(cfg *config.Config) SlotLockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSlotLockRepository{
		cfg:        cfg,
		collection: db.Collection(LockCollectionName),
	}
}

// Acquire inserts the lock document. A duplicate key error means the lock is
// already held; callers inspect the error with mongo.IsDuplicateKeyError.
func (r *mongoSlotLockRepository) Acquire(ctx context.Context, lock *model.SlotLock) (*model.SlotLock, error) {
	lock.CreatedAt = time.Now().UTC()
	lock.ExpiresAt = lock.CreatedAt.Add(r.cfg.SlotLockTTL)

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		return nil, err
	}

	return lock, nil
}

// Release removes an advisory lock
func (r *mongoSlotLockRepository) Release(ctx context.Context, lockID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID})
	return err
}
