package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kitchen-core/internal/model"
	"kitchen-core/internal/money"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(19, 2) NOT NULL CHECK (price >= 0),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS menus (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(19, 2) NOT NULL CHECK (price >= 0),
			sellable BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			menu_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			product_id UUID NOT NULL REFERENCES products(id),
			quantity BIGINT NOT NULL CHECK (quantity > 0),
			price NUMERIC(19, 2) NOT NULL CHECK (price >= 0)
		);

		CREATE TABLE IF NOT EXISTS tables (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			guest_count INTEGER NOT NULL DEFAULT 0 CHECK (guest_count >= 0),
			occupied BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			table_id UUID REFERENCES tables(id),
			delivery_address TEXT
		);

		CREATE TABLE IF NOT EXISTS order_lines (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_id UUID NOT NULL REFERENCES menus(id),
			quantity BIGINT NOT NULL,
			price NUMERIC(19, 2) NOT NULL CHECK (price >= 0)
		);

		CREATE INDEX IF NOT EXISTS idx_menu_items_menu_id ON menu_items(menu_id);
		CREATE INDEX IF NOT EXISTS idx_menu_items_product_id ON menu_items(product_id);
		CREATE INDEX IF NOT EXISTS idx_order_lines_order_id ON order_lines(order_id);
		CREATE INDEX IF NOT EXISTS idx_orders_table_id ON orders(table_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProduct inserts a product and returns it.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, name, price string) model.Product {
	t.Helper()

	product := model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     money.MustParse(price),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	_, err := pool.Exec(context.Background(),
		"INSERT INTO products (id, name, price, created_at) VALUES ($1, $2, $3, $4)",
		product.ID, product.Name, product.Price, product.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}

	return product
}

// SeedMenu inserts a menu with a single item and returns it.
func SeedMenu(t *testing.T, pool *pgxpool.Pool, name, price string, sellable bool, product model.Product, quantity int64) model.Menu {
	t.Helper()

	ctx := context.Background()
	menu := model.Menu{
		ID:        uuid.New(),
		Name:      name,
		Price:     money.MustParse(price),
		Sellable:  sellable,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	menu.Items = []model.MenuItem{
		{
			ID:        uuid.New(),
			MenuID:    menu.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     product.Price,
		},
	}

	_, err := pool.Exec(ctx,
		"INSERT INTO menus (id, name, price, sellable, created_at) VALUES ($1, $2, $3, $4, $5)",
		menu.ID, menu.Name, menu.Price, menu.Sellable, menu.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed menu %s: %v", name, err)
	}

	item := menu.Items[0]
	_, err = pool.Exec(ctx,
		"INSERT INTO menu_items (id, menu_id, product_id, quantity, price) VALUES ($1, $2, $3, $4, $5)",
		item.ID, item.MenuID, item.ProductID, item.Quantity, item.Price,
	)
	if err != nil {
		t.Fatalf("failed to seed menu item for %s: %v", name, err)
	}

	return menu
}

// SeedTable inserts a table and returns it.
func SeedTable(t *testing.T, pool *pgxpool.Pool, name string, guestCount int, occupied bool) model.Table {
	t.Helper()

	table := model.Table{
		ID:         uuid.New(),
		Name:       name,
		GuestCount: guestCount,
		Occupied:   occupied,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}

	_, err := pool.Exec(context.Background(),
		"INSERT INTO tables (id, name, guest_count, occupied, created_at) VALUES ($1, $2, $3, $4, $5)",
		table.ID, table.Name, table.GuestCount, table.Occupied, table.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed table %s: %v", name, err)
	}

	return table
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_lines", "orders", "menu_items", "menus", "tables", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
