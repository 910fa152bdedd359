package repository

import (
	"context"
	"errors"
	"fmt"

	"kitchen-core/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// tableRepository implements the TableRepository interface using PostgreSQL.
type tableRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewTableRepository creates a new PostgreSQL-backed table repository.
func NewTableRepository(pool *pgxpool.Pool, logger zerolog.Logger) TableRepository {
	return &tableRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "table").Logger(),
	}
}

// Create inserts a new table.
func (r *tableRepository) Create(ctx context.Context, table *model.Table) error {
	query := `
		INSERT INTO tables (id, name, guest_count, occupied, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		table.ID, table.Name, table.GuestCount, table.Occupied, table.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("table_id", table.ID.String()).
			Msg("failed to create table")
		return fmt.Errorf("failed to create table: %w", err)
	}

	r.logger.Debug().
		Str("table_id", table.ID.String()).
		Msg("table created successfully")

	return nil
}

// GetByID retrieves a single table by its ID.
func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Table, error) {
	query := `
		SELECT id, name, guest_count, occupied, created_at
		FROM tables
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id), id)
}

// GetByIDForUpdate retrieves a table by its ID, row-locked within the
// provided transaction so a completion's table clear and a new eat-in order
// cannot interleave.
func (r *tableRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Table, error) {
	query := `
		SELECT id, name, guest_count, occupied, created_at
		FROM tables
		WHERE id = $1
		FOR UPDATE
	`

	return r.scanOne(tx.QueryRow(ctx, query, id), id)
}

func (r *tableRepository) scanOne(row pgx.Row, id uuid.UUID) (*model.Table, error) {
	var t model.Table
	err := row.Scan(&t.ID, &t.Name, &t.GuestCount, &t.Occupied, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("table_id", id.String()).Msg("table not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("table_id", id.String()).Msg("failed to query table")
		return nil, fmt.Errorf("failed to query table: %w", err)
	}
	return &t, nil
}

// GetAll retrieves all tables.
func (r *tableRepository) GetAll(ctx context.Context) ([]model.Table, error) {
	query := `
		SELECT id, name, guest_count, occupied, created_at
		FROM tables
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query tables")
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []model.Table
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.Name, &t.GuestCount, &t.Occupied, &t.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan table row")
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating table rows")
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	return tables, nil
}

// Update persists a table's occupancy state.
func (r *tableRepository) Update(ctx context.Context, table *model.Table) error {
	return r.update(ctx, r.pool, table)
}

// UpdateTx persists a table's occupancy state within the provided transaction.
func (r *tableRepository) UpdateTx(ctx context.Context, tx pgx.Tx, table *model.Table) error {
	return r.update(ctx, tx, table)
}

// execer abstracts pool and transaction for write paths.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *tableRepository) update(ctx context.Context, e execer, table *model.Table) error {
	query := `
		UPDATE tables
		SET guest_count = $2, occupied = $3
		WHERE id = $1
	`

	tag, err := e.Exec(ctx, query, table.ID, table.GuestCount, table.Occupied)
	if err != nil {
		r.logger.Error().Err(err).Str("table_id", table.ID.String()).Msg("failed to update table")
		return fmt.Errorf("failed to update table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table %s does not exist", table.ID)
	}

	r.logger.Debug().
		Str("table_id", table.ID.String()).
		Bool("occupied", table.Occupied).
		Int("guest_count", table.GuestCount).
		Msg("table updated")

	return nil
}
