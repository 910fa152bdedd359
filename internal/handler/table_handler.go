package handler

import (
	"net/http"

	"kitchen-core/internal/model"
	"kitchen-core/internal/service"

	"github.com/rs/zerolog"
)

// TableHandler handles table-related HTTP requests.
type TableHandler struct {
	service service.TableService
	logger  zerolog.Logger
}

// NewTableHandler creates a new table handler.
func NewTableHandler(service service.TableService, logger zerolog.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		logger:  logger.With().Str("handler", "table").Logger(),
	}
}

// Create handles POST /api/tables requests.
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.TableCreateRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	table, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, table)
}

// Seat handles PUT /api/tables/{id}/seat requests.
func (h *TableHandler) Seat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.SeatRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	table, err := h.service.Seat(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// ChangeGuestCount handles PUT /api/tables/{id}/guests requests.
func (h *TableHandler) ChangeGuestCount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.SeatRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	table, err := h.service.ChangeGuestCount(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// Clear handles PUT /api/tables/{id}/clear requests.
func (h *TableHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	table, err := h.service.Clear(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// GetByID handles GET /api/tables/{id} requests.
func (h *TableHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	table, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// GetAll handles GET /api/tables requests.
func (h *TableHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tables)
}
