package handler

import (
	"encoding/json"
	"net/http"

	"courtly/internal/bookings/service"
	httputil "courtly/pkg/http"
	"courtly/pkg/logger"
	"courtly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

type availabilityResponse struct {
	CourtID   string `json:"court_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	courtID := query.Get("court_id")
	date := query.Get("date")
	startTime := query.Get("start_time")
	endTime := query.Get("end_time")

	available, err := h.service.IsSlotAvailable(r.Context(), courtID, date, startTime, endTime)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Availability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, availabilityResponse{
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Available: available,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Availability", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.transition(w, r, "Approve", func() (*model.Booking, error) {
		return h.service.Approve(r.Context(), ps.ByName("id"))
	})
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reason, ok := h.decodeReason(w, r, "Reject")
	if !ok {
		return
	}
	h.transition(w, r, "Reject", func() (*model.Booking, error) {
		return h.service.Reject(r.Context(), ps.ByName("id"), reason)
	})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reason, ok := h.decodeReason(w, r, "Cancel")
	if !ok {
		return
	}
	h.transition(w, r, "Cancel", func() (*model.Booking, error) {
		return h.service.CancelByUser(r.Context(), ps.ByName("id"), reason)
	})
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.transition(w, r, "Complete", func() (*model.Booking, error) {
		return h.service.Complete(r.Context(), ps.ByName("id"))
	})
}

func (h *BookingHandler) decodeReason(w http.ResponseWriter, r *http.Request, handlerName string) (string, bool) {
	var req reasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", handlerName, "operation", "WriteJSON", "error", writeErr)
		}
		return "", false
	}
	return req.Reason, true
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, handlerName string, fn func() (*model.Booking, error)) {
	booking, err := fn()
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handlerName, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", handlerName, "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetByCourt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByCourt", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	courtID := ps.ByName("courtId")
	date := r.URL.Query().Get("date")

	bookings, total, err := h.service.GetByCourt(r.Context(), courtID, date, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByCourt", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetByCourt", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) GetByStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookings, total, err := h.service.GetByStatus(r.Context(), ps.ByName("status"), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByStatus", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetByStatus", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) GetByManager(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByManager", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	ownerID := ps.ByName("ownerId")
	status := r.URL.Query().Get("status")

	bookings, total, err := h.service.GetByManager(r.Context(), ownerID, status, limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByManager", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetByManager", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/availability", h.Availability)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.POST("/api/v1/bookings/id/:id/approve", h.Approve)
	router.POST("/api/v1/bookings/id/:id/reject", h.Reject)
	router.POST("/api/v1/bookings/id/:id/cancel", h.Cancel)
	router.POST("/api/v1/bookings/id/:id/complete", h.Complete)
	router.GET("/api/v1/bookings/court/:courtId", h.GetByCourt)
	router.GET("/api/v1/bookings/status/:status", h.GetByStatus)
	router.GET("/api/v1/bookings/manager/:ownerId", h.GetByManager)
}
