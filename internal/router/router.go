package router

import (
	"net/http"

	"kitchen-core/internal/handler"
	"kitchen-core/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	tableHandler *handler.TableHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/products/{id}/price", productHandler.ChangePrice)

	mux.HandleFunc("POST /api/menus", menuHandler.Create)
	mux.HandleFunc("GET /api/menus", menuHandler.GetAll)
	mux.HandleFunc("GET /api/menus/{id}", menuHandler.GetByID)
	mux.HandleFunc("PUT /api/menus/{id}/price", menuHandler.ChangePrice)
	mux.HandleFunc("PUT /api/menus/{id}/show", menuHandler.Show)
	mux.HandleFunc("PUT /api/menus/{id}/hide", menuHandler.Hide)

	mux.HandleFunc("POST /api/orders/takeout", orderHandler.CreateTakeout)
	mux.HandleFunc("POST /api/orders/eat-in", orderHandler.CreateEatIn)
	mux.HandleFunc("POST /api/orders/delivery", orderHandler.CreateDelivery)
	mux.HandleFunc("GET /api/orders", orderHandler.GetAll)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.GetByID)
	mux.HandleFunc("PUT /api/orders/{id}/accept", orderHandler.Accept)
	mux.HandleFunc("PUT /api/orders/{id}/serve", orderHandler.Serve)
	mux.HandleFunc("PUT /api/orders/{id}/complete", orderHandler.Complete)

	mux.HandleFunc("POST /api/tables", tableHandler.Create)
	mux.HandleFunc("GET /api/tables", tableHandler.GetAll)
	mux.HandleFunc("GET /api/tables/{id}", tableHandler.GetByID)
	mux.HandleFunc("PUT /api/tables/{id}/seat", tableHandler.Seat)
	mux.HandleFunc("PUT /api/tables/{id}/guests", tableHandler.ChangeGuestCount)
	mux.HandleFunc("PUT /api/tables/{id}/clear", tableHandler.Clear)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
