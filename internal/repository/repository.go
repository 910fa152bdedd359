package repository

import (
	"context"

	"kitchen-core/internal/model"
	"kitchen-core/internal/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetByID retrieves a single product by its ID. Returns nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// UpdatePrice updates a product's price within the provided transaction.
	UpdatePrice(ctx context.Context, tx pgx.Tx, id uuid.UUID, price money.Money) error
}

// MenuRepository defines the interface for menu data access operations.
type MenuRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new menu with its composition within the provided
	// transaction.
	Create(ctx context.Context, tx pgx.Tx, menu *model.Menu) error

	// GetByID retrieves a menu with its composition. Returns nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// GetByIDsTx retrieves the subset of the given menus that exist, with
	// their compositions, within the provided transaction.
	GetByIDsTx(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]model.Menu, error)

	// GetByIDForUpdate retrieves a menu with its composition, row-locked
	// within the provided transaction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Menu, error)

	// GetAll retrieves all menus with their compositions.
	GetAll(ctx context.Context) ([]model.Menu, error)

	// GetByProductIDForUpdate retrieves all menus whose composition contains
	// the given product, row-locked within the provided transaction.
	GetByProductIDForUpdate(ctx context.Context, tx pgx.Tx, productID uuid.UUID) ([]model.Menu, error)

	// Update persists a menu's price, sellable flag, and cached item prices
	// within the provided transaction.
	Update(ctx context.Context, tx pgx.Tx, menu *model.Menu) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order with its lines within the provided
	// transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// GetByID retrieves an order with its lines. Returns nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByIDForUpdate retrieves an order with its lines, row-locked within
	// the provided transaction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Order, error)

	// GetAll retrieves all orders with their lines.
	GetAll(ctx context.Context) ([]model.Order, error)

	// UpdateStatus updates an order's status within the provided transaction.
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.OrderStatus) error
}

// TableRepository defines the interface for table data access operations.
type TableRepository interface {
	// Create inserts a new table.
	Create(ctx context.Context, table *model.Table) error

	// GetByID retrieves a single table by its ID. Returns nil if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Table, error)

	// GetByIDForUpdate retrieves a table by its ID, row-locked within the
	// provided transaction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Table, error)

	// GetAll retrieves all tables.
	GetAll(ctx context.Context) ([]model.Table, error)

	// Update persists a table's occupancy state.
	Update(ctx context.Context, table *model.Table) error

	// UpdateTx persists a table's occupancy state within the provided
	// transaction.
	UpdateTx(ctx context.Context, tx pgx.Tx, table *model.Table) error
}
