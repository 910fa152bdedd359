package repository

import (
	"context"
	"errors"
	"fmt"

	"kitchen-core/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *menuRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new menu with its composition within the provided transaction.
func (r *menuRepository) Create(ctx context.Context, tx pgx.Tx, menu *model.Menu) error {
	menuQuery := `
		INSERT INTO menus (id, name, price, sellable, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, menuQuery, menu.ID, menu.Name, menu.Price, menu.Sellable, menu.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("menu_id", menu.ID.String()).
			Msg("failed to create menu")
		return fmt.Errorf("failed to create menu: %w", err)
	}

	itemQuery := `
		INSERT INTO menu_items (id, menu_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, item := range menu.Items {
		batch.Queue(itemQuery, item.ID, item.MenuID, item.ProductID, item.Quantity, item.Price)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(menu.Items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("menu_id", menu.ID.String()).
				Str("product_id", menu.Items[i].ProductID.String()).
				Msg("failed to create menu item")
			return fmt.Errorf("failed to create menu item: %w", err)
		}
	}

	r.logger.Debug().
		Str("menu_id", menu.ID.String()).
		Int("item_count", len(menu.Items)).
		Msg("menu created successfully")

	return nil
}

// GetByID retrieves a menu with its composition.
func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	query := `
		SELECT id, name, price, sellable, created_at
		FROM menus
		WHERE id = $1
	`

	var m model.Menu
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Price, &m.Sellable, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("menu_id", id.String()).Msg("menu not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	if err := r.loadItems(ctx, r.pool, []*model.Menu{&m}); err != nil {
		return nil, err
	}

	return &m, nil
}

// GetByIDForUpdate retrieves a menu with its composition, row-locked within
// the provided transaction so explicit menu edits serialize with the product
// price cascade.
func (r *menuRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Menu, error) {
	query := `
		SELECT id, name, price, sellable, created_at
		FROM menus
		WHERE id = $1
		FOR UPDATE
	`

	var m model.Menu
	err := tx.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Price, &m.Sellable, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("menu_id", id.String()).Msg("menu not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	if err := r.loadItems(ctx, tx, []*model.Menu{&m}); err != nil {
		return nil, err
	}

	return &m, nil
}

// GetByIDsTx retrieves the subset of the given menus that exist within the
// provided transaction. Missing ids are simply absent from the result.
func (r *menuRepository) GetByIDsTx(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]model.Menu, error) {
	if len(ids) == 0 {
		return []model.Menu{}, nil
	}

	query := `
		SELECT id, name, price, sellable, created_at
		FROM menus
		WHERE id = ANY($1)
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query menus by IDs")
		return nil, fmt.Errorf("failed to query menus by IDs: %w", err)
	}

	menus, err := scanMenus(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItemsInto(ctx, tx, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// GetAll retrieves all menus with their compositions.
func (r *menuRepository) GetAll(ctx context.Context) ([]model.Menu, error) {
	query := `
		SELECT id, name, price, sellable, created_at
		FROM menus
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menus")
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}

	menus, err := scanMenus(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItemsInto(ctx, r.pool, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// GetByProductIDForUpdate retrieves all menus whose composition contains the
// given product, row-locked so concurrent price changes touching the same
// menus serialize.
func (r *menuRepository) GetByProductIDForUpdate(ctx context.Context, tx pgx.Tx, productID uuid.UUID) ([]model.Menu, error) {
	query := `
		SELECT id, name, price, sellable, created_at
		FROM menus
		WHERE id IN (SELECT menu_id FROM menu_items WHERE product_id = $1)
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to query menus by product")
		return nil, fmt.Errorf("failed to query menus by product: %w", err)
	}

	menus, err := scanMenus(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItemsInto(ctx, tx, menus); err != nil {
		return nil, err
	}

	return menus, nil
}

// Update persists a menu's price, sellable flag, and cached item prices
// within the provided transaction.
func (r *menuRepository) Update(ctx context.Context, tx pgx.Tx, menu *model.Menu) error {
	menuQuery := `
		UPDATE menus
		SET price = $2, sellable = $3
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, menuQuery, menu.ID, menu.Price, menu.Sellable)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to update menu")
		return fmt.Errorf("failed to update menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu %s does not exist", menu.ID)
	}

	itemQuery := `
		UPDATE menu_items
		SET price = $2
		WHERE id = $1
	`

	batch := &pgx.Batch{}
	for _, item := range menu.Items {
		batch.Queue(itemQuery, item.ID, item.Price)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(menu.Items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to update menu item")
			return fmt.Errorf("failed to update menu item: %w", err)
		}
	}

	r.logger.Debug().
		Str("menu_id", menu.ID.String()).
		Bool("sellable", menu.Sellable).
		Msg("menu updated")

	return nil
}

// querier abstracts pool and transaction for read paths.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *menuRepository) loadItems(ctx context.Context, q querier, menus []*model.Menu) error {
	ids := make([]uuid.UUID, len(menus))
	byID := make(map[uuid.UUID]*model.Menu, len(menus))
	for i, m := range menus {
		ids[i] = m.ID
		byID[m.ID] = m
	}

	query := `
		SELECT id, menu_id, product_id, quantity, price
		FROM menu_items
		WHERE menu_id = ANY($1)
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.MenuID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return fmt.Errorf("failed to scan menu item: %w", err)
		}
		if menu, ok := byID[item.MenuID]; ok {
			menu.Items = append(menu.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return fmt.Errorf("error iterating menu items: %w", err)
	}

	return nil
}

func (r *menuRepository) loadItemsInto(ctx context.Context, q querier, menus []model.Menu) error {
	if len(menus) == 0 {
		return nil
	}
	ptrs := make([]*model.Menu, len(menus))
	for i := range menus {
		ptrs[i] = &menus[i]
	}
	return r.loadItems(ctx, q, ptrs)
}

func scanMenus(rows pgx.Rows) ([]model.Menu, error) {
	defer rows.Close()

	var menus []model.Menu
	for rows.Next() {
		var m model.Menu
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Sellable, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}

	return menus, nil
}
