package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "courtly/pkg/errors"
	"courtly/pkg/logger"
	"courtly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockBookingService struct {
	createFunc          func(ctx context.Context, booking *model.Booking) error
	isSlotAvailableFunc func(ctx context.Context, courtID, date, startTime, endTime string) (bool, error)
	approveFunc         func(ctx context.Context, id string) (*model.Booking, error)
	rejectFunc          func(ctx context.Context, id string, reason string) (*model.Booking, error)
	getByCourtFunc      func(ctx context.Context, courtID, date string, limit int, offset int64) ([]*model.Booking, int64, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "665f1f77bcf86cd799439011"
	booking.Status = model.StatusPending
	return nil
}

func (m *mockBookingService) IsSlotAvailable(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
	if m.isSlotAvailableFunc != nil {
		return m.isSlotAvailableFunc(ctx, courtID, date, startTime, endTime)
	}
	return true, nil
}

func (m *mockBookingService) Approve(ctx context.Context, id string) (*model.Booking, error) {
	if m.approveFunc != nil {
		return m.approveFunc(ctx, id)
	}
	return &model.Booking{ID: id, Status: model.StatusConfirmed}, nil
}

func (m *mockBookingService) Reject(ctx context.Context, id string, reason string) (*model.Booking, error) {
	if m.rejectFunc != nil {
		return m.rejectFunc(ctx, id, reason)
	}
	return &model.Booking{ID: id, Status: model.StatusCancelledByManager, CancellationReason: reason}, nil
}

func (m *mockBookingService) CancelByUser(ctx context.Context, id string, reason string) (*model.Booking, error) {
	return &model.Booking{ID: id, Status: model.StatusCancelledByUser, CancellationReason: reason}, nil
}

func (m *mockBookingService) Complete(ctx context.Context, id string) (*model.Booking, error) {
	return &model.Booking{ID: id, Status: model.StatusCompleted}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) GetByCourt(ctx context.Context, courtID, date string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if m.getByCourtFunc != nil {
		return m.getByCourtFunc(ctx, courtID, date, limit, offset)
	}
	return []*model.Booking{}, 0, nil
}

func (m *mockBookingService) GetByStatus(ctx context.Context, status string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return []*model.Booking{}, 0, nil
}

func (m *mockBookingService) GetByManager(ctx context.Context, ownerID, status string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return []*model.Booking{}, 0, nil
}

func newTestHandler(svc *mockBookingService) *BookingHandler {
	log := logger.New(logger.Config{
		Level:   logger.LevelError,
		Format:  logger.FormatText,
		Service: "test",
	})
	return NewBookingHandler(svc, log)
}

func TestCreateHandler(t *testing.T) {
	handler := newTestHandler(&mockBookingService{})

	body := `{"court_id":"665f1f77bcf86cd799439011","date":"2026-09-15","start_time":"19:00","end_time":"20:00","number_of_players":4,"contact_name":"Ana","contact_phone":"+5511987654321"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}

	var response struct {
		Data model.Booking `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.ID == "" {
		t.Error("expected booking ID in response")
	}
}

func TestCreateHandlerBadBody(t *testing.T) {
	handler := newTestHandler(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreateHandlerSlotConflict(t *testing.T) {
	handler := newTestHandler(&mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return apperrors.SlotUnavailable("Slot overlaps an existing booking (19:00 - 20:00)", nil)
		},
	})

	body := `{"court_id":"665f1f77bcf86cd799439011","date":"2026-09-15","start_time":"19:30","end_time":"20:30","number_of_players":4,"contact_name":"Ana","contact_phone":"+5511987654321"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}

	var response struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Code != apperrors.CodeSlotUnavailable {
		t.Errorf("expected code SLOT_UNAVAILABLE, got %s", response.Code)
	}
}

func TestAvailabilityHandler(t *testing.T) {
	var gotCourtID, gotDate, gotStart, gotEnd string
	handler := newTestHandler(&mockBookingService{
		isSlotAvailableFunc: func(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
			gotCourtID, gotDate, gotStart, gotEnd = courtID, date, startTime, endTime
			return false, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings/availability?court_id=c1&date=2026-09-15&start_time=19:00&end_time=20:00", nil)
	w := httptest.NewRecorder()

	handler.Availability(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if gotCourtID != "c1" || gotDate != "2026-09-15" || gotStart != "19:00" || gotEnd != "20:00" {
		t.Errorf("query parameters not passed through: %s %s %s %s", gotCourtID, gotDate, gotStart, gotEnd)
	}

	var response struct {
		Data availabilityResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.Available {
		t.Error("expected available=false in response")
	}
}

func TestApproveHandler(t *testing.T) {
	handler := newTestHandler(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b1/approve", nil)
	w := httptest.NewRecorder()

	handler.Approve(w, req, httprouter.Params{{Key: "id", Value: "b1"}})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Data model.Booking `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.Status != model.StatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", response.Data.Status)
	}
}

func TestApproveHandlerInvalidTransition(t *testing.T) {
	handler := newTestHandler(&mockBookingService{
		approveFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.InvalidTransition("CANCELLED_BY_MANAGER", "CONFIRMED")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b1/approve", nil)
	w := httptest.NewRecorder()

	handler.Approve(w, req, httprouter.Params{{Key: "id", Value: "b1"}})

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}
}

func TestRejectHandler(t *testing.T) {
	var gotReason string
	handler := newTestHandler(&mockBookingService{
		rejectFunc: func(ctx context.Context, id string, reason string) (*model.Booking, error) {
			gotReason = reason
			return &model.Booking{ID: id, Status: model.StatusCancelledByManager, CancellationReason: reason}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b1/reject",
		strings.NewReader(`{"reason":"court under maintenance"}`))
	w := httptest.NewRecorder()

	handler.Reject(w, req, httprouter.Params{{Key: "id", Value: "b1"}})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if gotReason != "court under maintenance" {
		t.Errorf("expected reason passed through, got %q", gotReason)
	}
}

func TestRejectHandlerBadBody(t *testing.T) {
	handler := newTestHandler(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b1/reject", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	handler.Reject(w, req, httprouter.Params{{Key: "id", Value: "b1"}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGetByCourtHandlerPagination(t *testing.T) {
	var gotLimit int
	var gotOffset int64
	handler := newTestHandler(&mockBookingService{
		getByCourtFunc: func(ctx context.Context, courtID, date string, limit int, offset int64) ([]*model.Booking, int64, error) {
			gotLimit, gotOffset = limit, offset
			return []*model.Booking{
				{ID: "1", CourtID: courtID},
				{ID: "2", CourtID: courtID},
			}, 42, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/court/c1?limit=20&offset=10", nil)
	w := httptest.NewRecorder()

	handler.GetByCourt(w, req, httprouter.Params{{Key: "courtId", Value: "c1"}})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if gotLimit != 20 || gotOffset != 10 {
		t.Errorf("expected limit=20 offset=10, got %d/%d", gotLimit, gotOffset)
	}

	var response struct {
		Data       []model.Booking `json:"data"`
		TotalCount int64           `json:"total_count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.TotalCount != 42 || len(response.Data) != 2 {
		t.Errorf("unexpected page: %d items, total %d", len(response.Data), response.TotalCount)
	}
}
