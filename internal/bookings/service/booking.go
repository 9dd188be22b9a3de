package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingserrors "courtly/internal/bookings/errors"
	"courtly/internal/bookings/repository"
	"courtly/internal/bookings/validator"
	"courtly/internal/notifications"
	"courtly/pkg/config"
	apperrors "courtly/pkg/errors"
	"courtly/pkg/model"
	"courtly/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

// Clock abstracts wall time so completion rules can be tested without
// waiting for slots to end.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

func RealClock() Clock { return realClock{} }

// CourtDirectory resolves courts for pricing, opening-hours checks and
// manager-scoped queries.
type CourtDirectory interface {
	ResolveCourt(ctx context.Context, courtID string) (*model.Court, error)
	CourtIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	IsSlotAvailable(ctx context.Context, courtID, date, startTime, endTime string) (bool, error)
	Approve(ctx context.Context, id string) (*model.Booking, error)
	Reject(ctx context.Context, id string, reason string) (*model.Booking, error)
	CancelByUser(ctx context.Context, id string, reason string) (*model.Booking, error)
	Complete(ctx context.Context, id string) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByCourt(ctx context.Context, courtID string, date string, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByStatus(ctx context.Context, status string, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByManager(ctx context.Context, ownerID string, status string, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.SlotLockRepository
	validator *validator.BookingValidator
	courts    CourtDirectory
	emitter   notifications.Emitter
	clock     Clock
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.SlotLockRepository,
	validator *validator.BookingValidator,
	courts CourtDirectory,
	emitter notifications.Emitter,
	clock Clock,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		courts:    courts,
		emitter:   emitter,
		clock:     clock,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	court, err := s.resolveCourt(ctx, booking.CourtID)
	if err != nil {
		return err
	}
	if err := s.validator.ValidateWindow(booking, court); err != nil {
		s.cfg.Log.Warn("Booking outside opening hours",
			"court_id", booking.CourtID,
			"start_time", booking.StartTime,
			"end_time", booking.EndTime,
			"error", err,
		)
		return apperrors.Validation("Slot is outside court opening hours", map[string]any{
			"opening_time": court.OpeningTime,
			"closing_time": court.ClosingTime,
		})
	}
	booking.TotalPrice = s.price(booking, court)

	// Advisory lock serializes concurrent creates for the same court and day
	lockID, err := s.acquireSlotLock(ctx, booking.CourtID, booking.Date)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"court_id", booking.CourtID,
		"date", booking.Date,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
		"total_price", booking.TotalPrice,
	)
	s.emitter.EmitStatusChange(ctx, booking, "", "")
	return nil
}

func (s *bookingService) IsSlotAvailable(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
	if courtID == "" {
		return false, apperrors.InvalidInput("Court ID cannot be empty")
	}
	if !model.IsValidDate(date) {
		return false, apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
	}
	if !model.IsValidClockTime(startTime) || !model.IsValidClockTime(endTime) {
		return false, apperrors.InvalidInput("Times must be in HH:MM format (00:00-23:59)")
	}
	if endTime <= startTime {
		return false, apperrors.InvalidInput("End time must be after start time")
	}

	active, err := s.repo.FindActiveByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return false, apperrors.Internal("Failed to check slot availability", err)
	}

	for _, b := range active {
		if model.SlotsOverlap(startTime, endTime, b.StartTime, b.EndTime) {
			return false, nil
		}
	}
	return true, nil
}

func (s *bookingService) Approve(ctx context.Context, id string) (*model.Booking, error) {
	return s.transition(ctx, id, model.StatusConfirmed, "")
}

func (s *bookingService) Reject(ctx context.Context, id string, reason string) (*model.Booking, error) {
	if err := s.validator.ValidateReason(reason); err != nil {
		return nil, apperrors.InvalidInput("Rejection reason cannot be empty")
	}
	return s.transition(ctx, id, model.StatusCancelledByManager, reason)
}

func (s *bookingService) CancelByUser(ctx context.Context, id string, reason string) (*model.Booking, error) {
	if err := s.validator.ValidateReason(reason); err != nil {
		return nil, apperrors.InvalidInput("Cancellation reason cannot be empty")
	}
	return s.transition(ctx, id, model.StatusCancelledByUser, reason)
}

func (s *bookingService) Complete(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slotEnd, err := model.SlotEnd(booking.Date, booking.EndTime)
	if err != nil {
		return nil, apperrors.Internal("Failed to compute slot end", err)
	}
	if s.clock.Now().Before(slotEnd) {
		return nil, apperrors.NotYetElapsed(fmt.Sprintf(
			"Booking cannot be completed before its slot ends at %s %s",
			booking.Date, booking.EndTime,
		))
	}

	return s.transition(ctx, id, model.StatusCompleted, "")
}

// transition moves the booking to the requested status after checking the
// lifecycle graph, using a compare-and-set against the observed status so a
// concurrent transition loses cleanly instead of being overwritten.
func (s *bookingService) transition(ctx context.Context, id string, to model.BookingStatus, reason string) (*model.Booking, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := booking.Status
	if !from.CanTransitionTo(to) {
		s.cfg.Log.Warn("Illegal booking transition rejected",
			"id", id,
			"current_status", string(from),
			"requested_status", string(to),
		)
		return nil, apperrors.InvalidTransition(string(from), string(to))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, from, to, reason)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrStatusChanged) {
			return nil, apperrors.Conflict("Booking status was changed by another request. Please retry.")
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to update booking status", err)
	}

	s.cfg.Log.Info("Booking status updated",
		"id", id,
		"from", string(from),
		"to", string(to),
	)
	s.emitter.EmitStatusChange(ctx, updated, from, reason)
	return updated, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetByCourt(ctx context.Context, courtID string, date string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if courtID == "" {
		return nil, 0, apperrors.InvalidInput("Court ID cannot be empty")
	}
	if date != "" && !model.IsValidDate(date) {
		return nil, 0, apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByCourt(ctx, courtID, date)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings by court", "court_id", courtID, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByCourt(ctx, courtID, date, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings by court", "court_id", courtID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) GetByStatus(ctx context.Context, status string, limit int, offset int64) ([]*model.Booking, int64, error) {
	st := model.BookingStatus(status)
	if !st.IsValid() {
		return nil, 0, apperrors.InvalidInput(fmt.Sprintf("Unknown booking status: %s", status))
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByStatus(ctx, st)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings by status", "status", status, "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByStatus(ctx, st, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings by status", "status", status, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) GetByManager(ctx context.Context, ownerID string, status string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if ownerID == "" {
		return nil, 0, apperrors.InvalidInput("Owner ID cannot be empty")
	}

	var st model.BookingStatus
	if status != "" {
		st = model.BookingStatus(status)
		if !st.IsValid() {
			return nil, 0, apperrors.InvalidInput(fmt.Sprintf("Unknown booking status: %s", status))
		}
	}

	courtIDs, err := s.courts.CourtIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to resolve owner courts", err)
	}
	if len(courtIDs) == 0 {
		return []*model.Booking{}, 0, nil
	}

	bookings, err := s.repo.FindByCourtIDs(ctx, courtIDs, st, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by owner", "owner_id", ownerID, "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", err)
	}

	count, err := s.repo.CountByCourtIDs(ctx, courtIDs, st)
	if err != nil {
		s.cfg.Log.Error("Failed to count bookings by owner", "owner_id", ownerID, "error", err)
		return nil, 0, apperrors.Internal("Failed to count bookings", err)
	}

	return bookings, count, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.Booking) {
	b.ContactName = sanitizer.NormalizeName(b.ContactName)
	b.ContactPhone = sanitizer.NormalizePhone(b.ContactPhone)
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.Status == "" {
		b.Status = model.StatusPending
	}
	if b.NumberOfPlayers <= 0 {
		b.NumberOfPlayers = 1
	}
}

func (s *bookingService) validate(booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	if booking.NumberOfPlayers > s.cfg.MaxPlayersPerBooking {
		return apperrors.Validation("Too many players", map[string]any{
			"max_players": s.cfg.MaxPlayersPerBooking,
		})
	}
	return nil
}

func (s *bookingService) resolveCourt(ctx context.Context, courtID string) (*model.Court, error) {
	court, err := s.courts.ResolveCourt(ctx, courtID)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		if errors.Is(err, bookingserrors.ErrCourtNotFound) {
			return nil, apperrors.NotFoundWithID("Court", courtID)
		}
		return nil, apperrors.Internal("Failed to resolve court", err)
	}
	return court, nil
}

func (s *bookingService) price(b *model.Booking, court *model.Court) float64 {
	d, err := model.SlotDuration(b.StartTime, b.EndTime)
	if err != nil {
		return 0
	}
	return d.Hours() * court.HourlyRate
}

func (s *bookingService) verifySlotFree(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindActiveByCourtAndDate(ctx, booking.CourtID, booking.Date)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	for _, b := range existing {
		if b.ID == booking.ID {
			continue
		}
		if model.SlotsOverlap(booking.StartTime, booking.EndTime, b.StartTime, b.EndTime) {
			return apperrors.SlotUnavailable(
				fmt.Sprintf("Slot overlaps an existing booking (%s - %s)", b.StartTime, b.EndTime),
				map[string]any{
					"conflicting_booking_id": b.ID,
					"start_time":             b.StartTime,
					"end_time":               b.EndTime,
				},
			)
		}
	}
	return nil
}

// acquireSlotLock creates an advisory lock for one court-day.
// Returns the lock ID if successful, or conflict error if lock already exists
func (s *bookingService) acquireSlotLock(ctx context.Context, courtID, date string) (string, error) {
	lockID := fmt.Sprintf("slot_lock_%s_%s", courtID, date)

	lock := &model.SlotLock{ID: lockID}

	_, err := s.lockRepo.Acquire(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.Conflict("This slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire slot lock", err)
	}

	return lockID, nil
}

// releaseSlotLock removes the advisory lock
func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Release(ctx, lockID)
}
