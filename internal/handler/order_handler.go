package handler

import (
	"context"
	"net/http"

	"kitchen-core/internal/model"
	"kitchen-core/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// CreateTakeout handles POST /api/orders/takeout requests.
func (h *OrderHandler) CreateTakeout(w http.ResponseWriter, r *http.Request) {
	var req model.TakeoutOrderCreateRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.CreateTakeout(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// CreateEatIn handles POST /api/orders/eat-in requests.
func (h *OrderHandler) CreateEatIn(w http.ResponseWriter, r *http.Request) {
	var req model.EatInOrderCreateRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.CreateEatIn(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// CreateDelivery handles POST /api/orders/delivery requests.
func (h *OrderHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var req model.DeliveryOrderCreateRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.CreateDelivery(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Accept handles PUT /api/orders/{id}/accept requests.
func (h *OrderHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Accept)
}

// Serve handles PUT /api/orders/{id}/serve requests.
func (h *OrderHandler) Serve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Serve)
}

// Complete handles PUT /api/orders/{id}/complete requests.
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Complete)
}

func (h *OrderHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) (*model.Order, error),
) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	order, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
