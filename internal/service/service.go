package service

import (
	"context"

	"kitchen-core/internal/model"

	"github.com/google/uuid"
)

// ProductService defines catalogue operations over products.
type ProductService interface {
	// Create registers a new product with a screened name and a
	// non-negative price.
	Create(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error)

	// ChangePrice updates a product's price and eagerly re-evaluates the
	// price invariant of every menu containing the product, hiding any
	// menu that no longer satisfies it.
	ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)
}

// MenuService defines catalogue operations over menus.
type MenuService interface {
	// Create registers a new menu; creation is strict and must start
	// price-consistent.
	Create(ctx context.Context, req *model.MenuCreateRequest) (*model.Menu, error)

	// ChangePrice updates a menu's price; a change that would break the
	// price invariant is rejected rather than hiding the menu.
	ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Menu, error)

	// Show makes a menu sellable again; rejected while the price
	// invariant does not hold.
	Show(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// Hide withdraws a menu from sale.
	Hide(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// GetByID retrieves a single menu by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// GetAll retrieves all menus.
	GetAll(ctx context.Context) ([]model.Menu, error)
}

// OrderService defines order creation and lifecycle operations.
type OrderService interface {
	// CreateTakeout creates a takeout order in WAITING state.
	CreateTakeout(ctx context.Context, req *model.TakeoutOrderCreateRequest) (*model.Order, error)

	// CreateEatIn creates an eat-in order bound to an occupied table.
	CreateEatIn(ctx context.Context, req *model.EatInOrderCreateRequest) (*model.Order, error)

	// CreateDelivery creates a delivery order.
	CreateDelivery(ctx context.Context, req *model.DeliveryOrderCreateRequest) (*model.Order, error)

	// Accept moves a waiting order to ACCEPTED.
	Accept(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Serve moves an accepted order to SERVED.
	Serve(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Complete moves a served order to COMPLETED; for eat-in orders the
	// table is cleared in the same transaction.
	Complete(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByID retrieves a single order by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]model.Order, error)
}

// TableService defines table seating operations.
type TableService interface {
	// Create registers a new, unoccupied table.
	Create(ctx context.Context, req *model.TableCreateRequest) (*model.Table, error)

	// Seat marks a table occupied with the given number of guests.
	Seat(ctx context.Context, id uuid.UUID, req *model.SeatRequest) (*model.Table, error)

	// ChangeGuestCount updates the guest count of an occupied table.
	ChangeGuestCount(ctx context.Context, id uuid.UUID, req *model.SeatRequest) (*model.Table, error)

	// Clear vacates a table. Idempotent.
	Clear(ctx context.Context, id uuid.UUID) (*model.Table, error)

	// GetByID retrieves a single table by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Table, error)

	// GetAll retrieves all tables.
	GetAll(ctx context.Context) ([]model.Table, error)
}
