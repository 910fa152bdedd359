package service

import (
	"context"
	"fmt"

	"kitchen-core/internal/model"
	"kitchen-core/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
	tableRepo repository.TableRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	tableRepo repository.TableRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		tableRepo: tableRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateTakeout creates a takeout order. Menu resolution, the sellability
// check, and the order write happen in one transaction so a concurrent
// price change cannot slip between the price check and the snapshot.
func (s *orderService) CreateTakeout(ctx context.Context, req *model.TakeoutOrderCreateRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.InvalidArgument("order request is required")
	}
	return s.create(ctx, req.Lines, func(menus map[uuid.UUID]model.Menu, _ pgx.Tx) (*model.Order, error) {
		return model.NewTakeoutOrder(req.Lines, menus)
	})
}

// CreateEatIn creates an eat-in order bound to an occupied table.
func (s *orderService) CreateEatIn(ctx context.Context, req *model.EatInOrderCreateRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.InvalidArgument("order request is required")
	}
	return s.create(ctx, req.Lines, func(menus map[uuid.UUID]model.Menu, tx pgx.Tx) (*model.Order, error) {
		// Row-locked so completion of another order cannot clear the
		// table between this check and the order write.
		table, err := s.tableRepo.GetByIDForUpdate(ctx, tx, req.TableID)
		if err != nil {
			return nil, fmt.Errorf("failed to get table: %w", err)
		}
		if table == nil {
			return nil, model.NotFound("table not found")
		}
		return model.NewEatInOrder(req.Lines, menus, table)
	})
}

// CreateDelivery creates a delivery order.
func (s *orderService) CreateDelivery(ctx context.Context, req *model.DeliveryOrderCreateRequest) (*model.Order, error) {
	if req == nil {
		return nil, model.InvalidArgument("order request is required")
	}
	return s.create(ctx, req.Lines, func(menus map[uuid.UUID]model.Menu, _ pgx.Tx) (*model.Order, error) {
		return model.NewDeliveryOrder(req.DeliveryAddress, req.Lines, menus)
	})
}

// create resolves the referenced menus inside a fresh transaction, builds
// the order via build, and persists it before committing.
func (s *orderService) create(
	ctx context.Context,
	lines []model.OrderLineRequest,
	build func(menus map[uuid.UUID]model.Menu, tx pgx.Tx) (*model.Order, error),
) (*model.Order, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	menuIDs := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuID]; ok {
			continue
		}
		seen[line.MenuID] = struct{}{}
		menuIDs = append(menuIDs, line.MenuID)
	}

	menus, err := s.menuRepo.GetByIDsTx(ctx, tx, menuIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve menus")
		return nil, fmt.Errorf("failed to resolve menus: %w", err)
	}
	menuMap := make(map[uuid.UUID]model.Menu, len(menus))
	for _, m := range menus {
		menuMap[m.ID] = m
	}

	order, err := build(menuMap, tx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("order validation failed")
		return nil, err
	}

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("type", string(order.Type)).
		Int("line_count", len(order.Lines)).
		Msg("order created")

	return order, nil
}

// Accept moves a waiting order to ACCEPTED.
func (s *orderService) Accept(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return s.transition(ctx, id, func(order *model.Order, _ pgx.Tx) error {
		return order.Accept()
	})
}

// Serve moves an accepted order to SERVED.
func (s *orderService) Serve(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return s.transition(ctx, id, func(order *model.Order, _ pgx.Tx) error {
		return order.Serve()
	})
}

// Complete moves a served order to COMPLETED. For eat-in orders the table
// clear rides in the same transaction: if it cannot proceed the whole
// completion rolls back and the order stays SERVED.
func (s *orderService) Complete(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return s.transition(ctx, id, func(order *model.Order, tx pgx.Tx) error {
		if err := order.Complete(); err != nil {
			return err
		}
		if order.Type != model.OrderTypeEatIn {
			return nil
		}

		table, err := s.tableRepo.GetByIDForUpdate(ctx, tx, *order.TableID)
		if err != nil {
			return fmt.Errorf("failed to get table: %w", err)
		}
		if table == nil {
			return fmt.Errorf("table %s referenced by order no longer exists", *order.TableID)
		}
		table.Clear()
		if err := s.tableRepo.UpdateTx(ctx, tx, table); err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}

		s.logger.Info().
			Str("order_id", order.ID.String()).
			Str("table_id", table.ID.String()).
			Msg("table cleared on completion")
		return nil
	})
}

// transition applies a status change to a row-locked order and persists it
// in one transaction.
func (s *orderService) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(order *model.Order, tx pgx.Tx) error,
) (*model.Order, error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to transition order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		err = model.NotFound("order not found")
		return nil, err
	}

	if err = apply(order, tx); err != nil {
		s.logger.Warn().Err(err).Str("order_id", id.String()).Msg("order transition refused")
		return nil, err
	}

	if err = s.orderRepo.UpdateStatus(ctx, tx, id, order.Status); err != nil {
		return nil, fmt.Errorf("failed to transition order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to transition order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(order.Status)).
		Msg("order transitioned")

	return order, nil
}

// GetByID retrieves a single order by ID.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.NotFound("order not found")
	}
	return order, nil
}

// GetAll retrieves all orders.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}
