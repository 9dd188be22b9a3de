package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "courtly/internal/bookings/errors"
	"courtly/internal/bookings/validator"
	"courtly/pkg/config"
	mongotx "courtly/pkg/db/mongo"
	apperrors "courtly/pkg/errors"
	"courtly/pkg/logger"
	"courtly/pkg/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Fakes ---

type fakeBookingRepo struct {
	bookings []*model.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *model.Booking) error {
	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	b.CreatedAt = time.Now().UTC()
	stored := *b
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id string) (*model.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, bookingserrors.ErrInvalidID
	}
	for _, b := range f.bookings {
		if b.ID == id {
			copy := *b
			return &copy, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (f *fakeBookingRepo) FindActiveByCourtAndDate(_ context.Context, courtID, date string) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.Date == date && b.Status.BlocksSlot() {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByCourt(_ context.Context, courtID, date string, limit int, offset int64) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range f.bookings {
		if b.CourtID == courtID && (date == "" || b.Date == date) {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByCourt(_ context.Context, courtID, date string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.CourtID == courtID && (date == "" || b.Date == date) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) FindByStatus(_ context.Context, status model.BookingStatus, limit int, offset int64) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByStatus(_ context.Context, status model.BookingStatus) (int64, error) {
	bookings, _ := f.FindByStatus(nil, status, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindByCourtIDs(_ context.Context, courtIDs []string, status model.BookingStatus, limit int, offset int64) ([]*model.Booking, error) {
	ids := map[string]bool{}
	for _, id := range courtIDs {
		ids[id] = true
	}
	var out []*model.Booking
	for _, b := range f.bookings {
		if ids[b.CourtID] && (status == "" || b.Status == status) {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByCourtIDs(ctx context.Context, courtIDs []string, status model.BookingStatus) (int64, error) {
	bookings, _ := f.FindByCourtIDs(ctx, courtIDs, status, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, from, to model.BookingStatus, reason string) (*model.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			if b.Status != from {
				return nil, bookingserrors.ErrStatusChanged
			}
			b.Status = to
			if reason != "" {
				b.CancellationReason = reason
			}
			copy := *b
			return &copy, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (f *fakeBookingRepo) ExecuteTransaction(_ context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type fakeLockRepo struct {
	held     map[string]bool
	acquires int
}

func (f *fakeLockRepo) Acquire(_ context.Context, lock *model.SlotLock) (*model.SlotLock, error) {
	if f.held == nil {
		f.held = map[string]bool{}
	}
	if f.held[lock.ID] {
		return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	f.held[lock.ID] = true
	f.acquires++
	return lock, nil
}

func (f *fakeLockRepo) Release(_ context.Context, lockID string) error {
	delete(f.held, lockID)
	return nil
}

type fakeCourtDirectory struct {
	courts  map[string]*model.Court
	byOwner map[string][]string
}

func (f *fakeCourtDirectory) ResolveCourt(_ context.Context, courtID string) (*model.Court, error) {
	if c, ok := f.courts[courtID]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, bookingserrors.ErrCourtNotFound
}

func (f *fakeCourtDirectory) CourtIDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	return f.byOwner[ownerID], nil
}

type recordedEvent struct {
	old    model.BookingStatus
	new    model.BookingStatus
	reason string
}

type captureEmitter struct {
	events []recordedEvent
}

func (c *captureEmitter) EmitStatusChange(_ context.Context, b *model.Booking, old model.BookingStatus, reason string) {
	c.events = append(c.events, recordedEvent{old: old, new: b.Status, reason: reason})
}

func (c *captureEmitter) Close() error { return nil }

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time { return f.now }

// --- Harness ---

const (
	testCourtID = "665f1f77bcf86cd799439011"
	testOwnerID = "user-owner-1"
	testDate    = "2026-09-15"
)

type harness struct {
	svc     BookingService
	repo    *fakeBookingRepo
	locks   *fakeLockRepo
	emitter *captureEmitter
	clock   *fixedClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.LevelError, Format: logger.FormatText, Service: "test"})
	cfg := &config.Config{
		Log:                  log,
		MaxPlayersPerBooking: 22,
		SlotLockTTL:          10 * time.Second,
	}

	repo := &fakeBookingRepo{}
	locks := &fakeLockRepo{}
	emitter := &captureEmitter{}
	clock := &fixedClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	courts := &fakeCourtDirectory{
		courts: map[string]*model.Court{
			testCourtID: {
				ID:          testCourtID,
				OwnerID:     testOwnerID,
				Name:        "Center Court",
				Sport:       "padel",
				HourlyRate:  120,
				OpeningTime: "08:00",
				ClosingTime: "23:00",
			},
		},
		byOwner: map[string][]string{testOwnerID: {testCourtID}},
	}

	svc := NewBookingService(repo, locks, validator.NewBookingValidator(log), courts, emitter, clock, cfg)
	return &harness{svc: svc, repo: repo, locks: locks, emitter: emitter, clock: clock}
}

func newBooking(startTime, endTime string) *model.Booking {
	return &model.Booking{
		CourtID:         testCourtID,
		Date:            testDate,
		StartTime:       startTime,
		EndTime:         endTime,
		NumberOfPlayers: 4,
		ContactName:     "Ana Souza",
		ContactPhone:    "+5511987654321",
	}
}

func (h *harness) mustCreate(t *testing.T, startTime, endTime string) *model.Booking {
	t.Helper()
	b := newBooking(startTime, endTime)
	if err := h.svc.Create(context.Background(), b); err != nil {
		t.Fatalf("Create(%s-%s) failed: %v", startTime, endTime, err)
	}
	return b
}

func assertAppError(t *testing.T, err error, wantCode string) *apperrors.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", wantCode)
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError with code %s, got %T: %v", wantCode, err, err)
	}
	if appErr.Code != wantCode {
		t.Fatalf("expected code %s, got %s (%s)", wantCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// --- Create ---

func TestCreateBooking(t *testing.T) {
	h := newHarness(t)

	b := h.mustCreate(t, "19:00", "20:00")

	if b.ID == "" {
		t.Error("expected generated booking ID")
	}
	if b.Status != model.StatusPending {
		t.Errorf("expected new booking to be PENDING, got %s", b.Status)
	}
	if b.TotalPrice != 120 {
		t.Errorf("expected price 120 for one hour, got %v", b.TotalPrice)
	}
	if len(h.emitter.events) != 1 {
		t.Fatalf("expected one emitted event, got %d", len(h.emitter.events))
	}
	if ev := h.emitter.events[0]; ev.old != "" || ev.new != model.StatusPending {
		t.Errorf("expected created event (\"\" -> PENDING), got %s -> %s", ev.old, ev.new)
	}
	if len(h.locks.held) != 0 {
		t.Error("expected slot lock to be released after create")
	}
}

func TestCreateBookingPrice(t *testing.T) {
	h := newHarness(t)

	b := h.mustCreate(t, "18:00", "19:30")

	if b.TotalPrice != 180 {
		t.Errorf("expected price 180 for 1.5 hours at 120/h, got %v", b.TotalPrice)
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	h := newHarness(t)
	h.mustCreate(t, "19:00", "20:00")

	cases := []struct {
		name       string
		start, end string
	}{
		{"straddles start", "18:30", "19:30"},
		{"inside", "19:15", "19:45"},
		{"straddles end", "19:30", "20:30"},
		{"covers", "18:00", "21:00"},
		{"exact", "19:00", "20:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := h.svc.Create(context.Background(), newBooking(tc.start, tc.end))
			assertAppError(t, err, apperrors.CodeSlotUnavailable)
		})
	}

	if len(h.repo.bookings) != 1 {
		t.Errorf("expected rejected creates to leave store unchanged, got %d bookings", len(h.repo.bookings))
	}
}

func TestCreateBookingAbuttingSlots(t *testing.T) {
	h := newHarness(t)
	h.mustCreate(t, "19:00", "20:00")

	h.mustCreate(t, "20:00", "21:00")
	h.mustCreate(t, "18:00", "19:00")

	if len(h.repo.bookings) != 3 {
		t.Errorf("expected 3 bookings, got %d", len(h.repo.bookings))
	}
}

func TestCreateBookingCancelledSlotIsFree(t *testing.T) {
	h := newHarness(t)
	first := h.mustCreate(t, "19:00", "20:00")

	if _, err := h.svc.CancelByUser(context.Background(), first.ID, "change of plans"); err != nil {
		t.Fatalf("CancelByUser failed: %v", err)
	}

	h.mustCreate(t, "19:00", "20:00")
}

func TestCreateBookingOutsideOpeningHours(t *testing.T) {
	h := newHarness(t)

	err := h.svc.Create(context.Background(), newBooking("22:30", "23:30"))
	assertAppError(t, err, apperrors.CodeValidation)

	err = h.svc.Create(context.Background(), newBooking("07:00", "08:30"))
	assertAppError(t, err, apperrors.CodeValidation)
}

func TestCreateBookingValidation(t *testing.T) {
	h := newHarness(t)

	cases := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{"missing court", func(b *model.Booking) { b.CourtID = "" }},
		{"bad date", func(b *model.Booking) { b.Date = "15/09/2026" }},
		{"bad start time", func(b *model.Booking) { b.StartTime = "9:00" }},
		{"end before start", func(b *model.Booking) { b.StartTime = "20:00"; b.EndTime = "19:00" }},
		{"zero duration", func(b *model.Booking) { b.StartTime = "19:00"; b.EndTime = "19:00" }},
		{"bad phone", func(b *model.Booking) { b.ContactPhone = "11 98765-4321" }},
		{"short name", func(b *model.Booking) { b.ContactName = "A" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBooking("19:00", "20:00")
			tc.mutate(b)
			err := h.svc.Create(context.Background(), b)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			appErr := apperrors.AsAppError(err)
			if appErr == nil {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != apperrors.CodeValidation && appErr.Code != apperrors.CodeInvalidInput {
				t.Errorf("expected validation error, got %s", appErr.Code)
			}
		})
	}
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	h := newHarness(t)

	b := newBooking("19:00", "20:00")
	b.CourtID = primitive.NewObjectID().Hex()

	err := h.svc.Create(context.Background(), b)
	assertAppError(t, err, apperrors.CodeNotFound)
}

func TestCreateBookingLockHeld(t *testing.T) {
	h := newHarness(t)
	h.locks.held = map[string]bool{"slot_lock_" + testCourtID + "_" + testDate: true}

	err := h.svc.Create(context.Background(), newBooking("19:00", "20:00"))
	assertAppError(t, err, apperrors.CodeConflict)
}

// --- Availability ---

func TestIsSlotAvailable(t *testing.T) {
	h := newHarness(t)
	h.mustCreate(t, "19:00", "20:00")

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"free earlier", "17:00", "18:00", true},
		{"abuts before", "18:00", "19:00", true},
		{"overlaps start", "18:30", "19:30", false},
		{"exact match", "19:00", "20:00", false},
		{"abuts after", "20:00", "21:00", true},
		{"free later", "21:00", "22:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := h.svc.IsSlotAvailable(context.Background(), testCourtID, testDate, tc.start, tc.end)
			if err != nil {
				t.Fatalf("IsSlotAvailable failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("IsSlotAvailable(%s-%s) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestIsSlotAvailableInvalidInput(t *testing.T) {
	h := newHarness(t)

	cases := []struct {
		name                       string
		courtID, date, start, end string
	}{
		{"empty court", "", testDate, "19:00", "20:00"},
		{"bad date", testCourtID, "2026-9-15", "19:00", "20:00"},
		{"bad time", testCourtID, testDate, "19h00", "20:00"},
		{"inverted", testCourtID, testDate, "20:00", "19:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.svc.IsSlotAvailable(context.Background(), tc.courtID, tc.date, tc.start, tc.end)
			assertAppError(t, err, apperrors.CodeInvalidInput)
		})
	}
}

func TestIsSlotAvailableIgnoresCancelled(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	if _, err := h.svc.Reject(context.Background(), b.ID, "court under maintenance"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}

	got, err := h.svc.IsSlotAvailable(context.Background(), testCourtID, testDate, "19:00", "20:00")
	if err != nil {
		t.Fatalf("IsSlotAvailable failed: %v", err)
	}
	if !got {
		t.Error("expected slot freed by rejected booking to be available")
	}
}

// --- Lifecycle ---

func TestApprove(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	updated, err := h.svc.Approve(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if updated.Status != model.StatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", updated.Status)
	}

	last := h.emitter.events[len(h.emitter.events)-1]
	if last.old != model.StatusPending || last.new != model.StatusConfirmed {
		t.Errorf("expected PENDING -> CONFIRMED event, got %s -> %s", last.old, last.new)
	}
}

func TestRejectThenApproveFails(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	rejected, err := h.svc.Reject(context.Background(), b.ID, "quadra em manutenção")
	if err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if rejected.Status != model.StatusCancelledByManager {
		t.Errorf("expected CANCELLED_BY_MANAGER, got %s", rejected.Status)
	}
	if rejected.CancellationReason != "quadra em manutenção" {
		t.Errorf("expected reason to be stored, got %q", rejected.CancellationReason)
	}

	_, err = h.svc.Approve(context.Background(), b.ID)
	appErr := assertAppError(t, err, apperrors.CodeInvalidTransition)
	if appErr.Details["current_status"] != string(model.StatusCancelledByManager) {
		t.Errorf("expected current_status detail, got %v", appErr.Details)
	}

	after, err := h.svc.GetByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if after.Status != model.StatusCancelledByManager {
		t.Errorf("failed approve must not change status, got %s", after.Status)
	}
	if after.CancellationReason != "quadra em manutenção" {
		t.Errorf("failed approve must not clear reason, got %q", after.CancellationReason)
	}
}

func TestRejectRequiresReason(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	for _, reason := range []string{"", "   "} {
		_, err := h.svc.Reject(context.Background(), b.ID, reason)
		assertAppError(t, err, apperrors.CodeInvalidInput)
	}

	_, err := h.svc.CancelByUser(context.Background(), b.ID, "")
	assertAppError(t, err, apperrors.CodeInvalidInput)
}

func TestCancelByUser(t *testing.T) {
	h := newHarness(t)

	t.Run("from pending", func(t *testing.T) {
		b := h.mustCreate(t, "10:00", "11:00")
		updated, err := h.svc.CancelByUser(context.Background(), b.ID, "rain forecast")
		if err != nil {
			t.Fatalf("CancelByUser failed: %v", err)
		}
		if updated.Status != model.StatusCancelledByUser {
			t.Errorf("expected CANCELLED_BY_USER, got %s", updated.Status)
		}
	})

	t.Run("from confirmed", func(t *testing.T) {
		b := h.mustCreate(t, "11:00", "12:00")
		if _, err := h.svc.Approve(context.Background(), b.ID); err != nil {
			t.Fatalf("Approve failed: %v", err)
		}
		if _, err := h.svc.CancelByUser(context.Background(), b.ID, "injured"); err != nil {
			t.Fatalf("CancelByUser failed: %v", err)
		}
	})

	t.Run("from terminal", func(t *testing.T) {
		b := h.mustCreate(t, "12:00", "13:00")
		if _, err := h.svc.CancelByUser(context.Background(), b.ID, "first"); err != nil {
			t.Fatalf("CancelByUser failed: %v", err)
		}
		_, err := h.svc.CancelByUser(context.Background(), b.ID, "second")
		assertAppError(t, err, apperrors.CodeInvalidTransition)
	})
}

func TestComplete(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")
	if _, err := h.svc.Approve(context.Background(), b.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	// Clock is before the slot's end
	h.clock.now = time.Date(2026, 9, 15, 19, 30, 0, 0, time.UTC)
	_, err := h.svc.Complete(context.Background(), b.ID)
	assertAppError(t, err, apperrors.CodeNotYetElapsed)

	h.clock.now = time.Date(2026, 9, 15, 20, 0, 0, 0, time.UTC)
	updated, err := h.svc.Complete(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("expected COMPLETED, got %s", updated.Status)
	}
}

func TestCompletePendingFails(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	h.clock.now = time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	_, err := h.svc.Complete(context.Background(), b.ID)
	assertAppError(t, err, apperrors.CodeInvalidTransition)
}

func TestTransitionConcurrentChange(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	// A stale writer still believing the booking is CONFIRMED loses the update
	_, err := h.repo.UpdateStatus(context.Background(), b.ID, model.StatusConfirmed, model.StatusCompleted, "")
	if err != bookingserrors.ErrStatusChanged {
		t.Fatalf("expected ErrStatusChanged, got %v", err)
	}

	after, err := h.svc.GetByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if after.Status != model.StatusPending {
		t.Errorf("lost update must not change status, got %s", after.Status)
	}
}

// --- Queries ---

func TestGetByID(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "19:00", "20:00")

	got, err := h.svc.GetByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ID != b.ID {
		t.Errorf("expected booking %s, got %s", b.ID, got.ID)
	}

	_, err = h.svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
	assertAppError(t, err, apperrors.CodeNotFound)

	_, err = h.svc.GetByID(context.Background(), "not-a-hex-id")
	assertAppError(t, err, apperrors.CodeInvalidInput)

	_, err = h.svc.GetByID(context.Background(), "")
	assertAppError(t, err, apperrors.CodeInvalidInput)
}

func TestGetByCourt(t *testing.T) {
	h := newHarness(t)
	h.mustCreate(t, "18:00", "19:00")
	h.mustCreate(t, "19:00", "20:00")

	bookings, count, err := h.svc.GetByCourt(context.Background(), testCourtID, testDate, 10, 0)
	if err != nil {
		t.Fatalf("GetByCourt failed: %v", err)
	}
	if count != 2 || len(bookings) != 2 {
		t.Errorf("expected 2 bookings, got %d (count %d)", len(bookings), count)
	}

	_, _, err = h.svc.GetByCourt(context.Background(), "", "", 10, 0)
	assertAppError(t, err, apperrors.CodeInvalidInput)
}

func TestGetByStatus(t *testing.T) {
	h := newHarness(t)
	b := h.mustCreate(t, "18:00", "19:00")
	h.mustCreate(t, "19:00", "20:00")
	if _, err := h.svc.Approve(context.Background(), b.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	pending, count, err := h.svc.GetByStatus(context.Background(), "PENDING", 10, 0)
	if err != nil {
		t.Fatalf("GetByStatus failed: %v", err)
	}
	if count != 1 || len(pending) != 1 {
		t.Errorf("expected 1 pending booking, got %d (count %d)", len(pending), count)
	}

	_, _, err = h.svc.GetByStatus(context.Background(), "SHIPPED", 10, 0)
	assertAppError(t, err, apperrors.CodeInvalidInput)
}

func TestGetByManager(t *testing.T) {
	h := newHarness(t)
	h.mustCreate(t, "18:00", "19:00")

	bookings, count, err := h.svc.GetByManager(context.Background(), testOwnerID, "", 10, 0)
	if err != nil {
		t.Fatalf("GetByManager failed: %v", err)
	}
	if count != 1 || len(bookings) != 1 {
		t.Errorf("expected 1 booking for owner, got %d (count %d)", len(bookings), count)
	}

	bookings, count, err = h.svc.GetByManager(context.Background(), "owner-without-courts", "", 10, 0)
	if err != nil {
		t.Fatalf("GetByManager failed: %v", err)
	}
	if count != 0 || len(bookings) != 0 {
		t.Errorf("expected no bookings for ownerless manager, got %d", len(bookings))
	}

	_, _, err = h.svc.GetByManager(context.Background(), testOwnerID, "SHIPPED", 10, 0)
	assertAppError(t, err, apperrors.CodeInvalidInput)
}
