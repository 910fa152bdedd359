package service

import (
	"context"
	"fmt"

	"kitchen-core/internal/model"
	"kitchen-core/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// tableService implements TableService.
type tableService struct {
	tableRepo repository.TableRepository
	logger    zerolog.Logger
}

// NewTableService creates a new table service.
func NewTableService(tableRepo repository.TableRepository, logger zerolog.Logger) TableService {
	return &tableService{
		tableRepo: tableRepo,
		logger:    logger.With().Str("service", "table").Logger(),
	}
}

// Create registers a new table, vacant with zero guests.
func (s *tableService) Create(ctx context.Context, req *model.TableCreateRequest) (*model.Table, error) {
	if req == nil {
		return nil, model.InvalidArgument("table request is required")
	}

	table, err := model.NewTable(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.tableRepo.Create(ctx, table); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create table")
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	s.logger.Info().Str("table_id", table.ID.String()).Str("name", table.Name).Msg("table created")
	return table, nil
}

// Seat marks a table occupied with the given guest count.
func (s *tableService) Seat(ctx context.Context, id uuid.UUID, req *model.SeatRequest) (*model.Table, error) {
	if req == nil {
		return nil, model.InvalidArgument("seat request is required")
	}
	return s.mutate(ctx, id, "seat", func(table *model.Table) error {
		return table.Seat(req.GuestCount)
	})
}

// ChangeGuestCount updates the guest count of an occupied table.
func (s *tableService) ChangeGuestCount(ctx context.Context, id uuid.UUID, req *model.SeatRequest) (*model.Table, error) {
	if req == nil {
		return nil, model.InvalidArgument("guest count request is required")
	}
	return s.mutate(ctx, id, "change guest count", func(table *model.Table) error {
		return table.ChangeGuestCount(req.GuestCount)
	})
}

// Clear vacates a table and resets its guest count.
func (s *tableService) Clear(ctx context.Context, id uuid.UUID) (*model.Table, error) {
	return s.mutate(ctx, id, "clear", func(table *model.Table) error {
		table.Clear()
		return nil
	})
}

// mutate loads a table, applies fn, and persists the result.
func (s *tableService) mutate(ctx context.Context, id uuid.UUID, op string, fn func(*model.Table) error) (*model.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("table_id", id.String()).Msgf("failed to %s table", op)
		return nil, fmt.Errorf("failed to %s table: %w", op, err)
	}
	if table == nil {
		return nil, model.NotFound("table not found")
	}

	if err := fn(table); err != nil {
		s.logger.Warn().Err(err).Str("table_id", id.String()).Msgf("refused to %s table", op)
		return nil, err
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		s.logger.Error().Err(err).Str("table_id", id.String()).Msgf("failed to %s table", op)
		return nil, fmt.Errorf("failed to %s table: %w", op, err)
	}

	s.logger.Info().
		Str("table_id", id.String()).
		Bool("occupied", table.Occupied).
		Int("guest_count", table.GuestCount).
		Msgf("table %s", op)

	return table, nil
}

// GetByID retrieves a single table by ID.
func (s *tableService) GetByID(ctx context.Context, id uuid.UUID) (*model.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("table_id", id.String()).Msg("failed to get table")
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	if table == nil {
		return nil, model.NotFound("table not found")
	}
	return table, nil
}

// GetAll retrieves all tables.
func (s *tableService) GetAll(ctx context.Context) ([]model.Table, error) {
	tables, err := s.tableRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get tables")
		return nil, fmt.Errorf("failed to get tables: %w", err)
	}
	return tables, nil
}
