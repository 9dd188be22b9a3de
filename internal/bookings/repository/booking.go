package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "courtly/internal/bookings/errors"
	"courtly/pkg/config"
	mongotx "courtly/pkg/db/mongo"
	"courtly/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Bookings"
)

type mongoBookingRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindActiveByCourtAndDate(ctx context.Context, courtID string, date string) ([]*model.Booking, error)
	FindByCourt(ctx context.Context, courtID string, date string, limit int, offset int64) ([]*model.Booking, error)
	CountByCourt(ctx context.Context, courtID string, date string) (int64, error)
	FindByStatus(ctx context.Context, status model.BookingStatus, limit int, offset int64) ([]*model.Booking, error)
	CountByStatus(ctx context.Context, status model.BookingStatus) (int64, error)
	FindByCourtIDs(ctx context.Context, courtIDs []string, status model.BookingStatus, limit int, offset int64) ([]*model.Booking, error)
	CountByCourtIDs(ctx context.Context, courtIDs []string, status model.BookingStatus) (int64, error)
	UpdateStatus(ctx context.Context, id string, from, to model.BookingStatus, reason string) (*model.Booking, error)
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout unless already inside a
// transaction. A SessionContext cannot be wrapped without breaking
// transaction semantics, so it is returned unchanged with a no-op cancel.
func (r *mongoBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", bookingserrors.ErrDuplicateKey, err)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid.Hex()
	}
	return nil
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}

	var booking model.Booking
	err = r.collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return &booking, nil
}

// FindActiveByCourtAndDate returns every slot-blocking booking for the court
// on the given date. Callers compare candidate intervals against this set, so
// it is not paginated.
func (r *mongoBookingRepository) FindActiveByCourtAndDate(ctx context.Context, courtID string, date string) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"court_id": courtID,
		"date":     date,
		"status":   bson.M{"$in": model.ActiveStatuses()},
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) FindByCourt(ctx context.Context, courtID string, date string, limit int, offset int64) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := r.buildCourtFilter(courtID, date)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by court: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) CountByCourt(ctx context.Context, courtID string, date string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, r.buildCourtFilter(courtID, date))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by court: %w", err)
	}
	return count, nil
}

func (r *mongoBookingRepository) buildCourtFilter(courtID string, date string) bson.M {
	filter := bson.M{"court_id": courtID}
	if date != "" {
		filter["date"] = date
	}
	return filter
}

func (r *mongoBookingRepository) FindByStatus(ctx context.Context, status model.BookingStatus, limit int, offset int64) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by status: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) CountByStatus(ctx context.Context, status model.BookingStatus) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by status: %w", err)
	}
	return count, nil
}

func (r *mongoBookingRepository) FindByCourtIDs(ctx context.Context, courtIDs []string, status model.BookingStatus, limit int, offset int64) ([]*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := r.buildCourtIDsFilter(courtIDs, status)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by courts: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) CountByCourtIDs(ctx context.Context, courtIDs []string, status model.BookingStatus) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, r.buildCourtIDsFilter(courtIDs, status))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by courts: %w", err)
	}
	return count, nil
}

func (r *mongoBookingRepository) buildCourtIDsFilter(courtIDs []string, status model.BookingStatus) bson.M {
	filter := bson.M{"court_id": bson.M{"$in": courtIDs}}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

// UpdateStatus moves a booking from one status to another with a
// compare-and-set on the expected current status. A booking whose status was
// changed by a concurrent writer matches nothing and the call fails instead
// of overwriting the newer state.
func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id string, from, to model.BookingStatus, reason string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID, "status": from}
	set := bson.M{"status": to}
	if reason != "" {
		set["cancellation_reason"] = reason
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking model.Booking
	err = r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			if _, findErr := r.FindByID(ctx, id); errors.Is(findErr, bookingserrors.ErrNotFound) {
				return nil, bookingserrors.ErrNotFound
			}
			return nil, bookingserrors.ErrStatusChanged
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return &booking, nil
}

func (r *mongoBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
