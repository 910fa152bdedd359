package handler

import (
	"net/http"

	"kitchen-core/internal/model"
	"kitchen-core/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Create handles POST /api/menus requests.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.MenuCreateRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	menu, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, menu)
}

// ChangePrice handles PUT /api/menus/{id}/price requests.
func (h *MenuHandler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.PriceChangeRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	menu, err := h.service.ChangePrice(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

// Show handles PUT /api/menus/{id}/show requests.
func (h *MenuHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	menu, err := h.service.Show(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

// Hide handles PUT /api/menus/{id}/hide requests.
func (h *MenuHandler) Hide(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	menu, err := h.service.Hide(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

// GetByID handles GET /api/menus/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	menu, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

// GetAll handles GET /api/menus requests.
func (h *MenuHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menus)
}
