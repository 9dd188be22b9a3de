package handler

import (
	"encoding/json"
	"net/http"

	"courtly/internal/courts/service"
	httputil "courtly/pkg/http"
	"courtly/pkg/logger"
	"courtly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type CourtHandler struct {
	service service.CourtService
	log     *logger.Logger
}

func NewCourtHandler(service service.CourtService, log *logger.Logger) *CourtHandler {
	return &CourtHandler{
		service: service,
		log:     log,
	}
}

func (h *CourtHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var court model.Court
	if err := json.NewDecoder(r.Body).Decode(&court); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &court); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, court); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *CourtHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	court, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, court); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CourtHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	courts, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, courts, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *CourtHandler) GetByOwner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	courts, err := h.service.GetByOwner(r.Context(), ps.ByName("ownerId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByOwner", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, courts); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByOwner", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CourtHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.CourtUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	court, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, court); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CourtHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *CourtHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/courts", h.Create)
	router.GET("/api/v1/courts", h.GetAll)
	router.GET("/api/v1/courts/id/:id", h.GetByID)
	router.PATCH("/api/v1/courts/id/:id", h.Update)
	router.DELETE("/api/v1/courts/id/:id", h.Delete)
	router.GET("/api/v1/courts/owner/:ownerId", h.GetByOwner)
}
