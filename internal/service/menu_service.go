package service

import (
	"context"
	"fmt"

	"kitchen-core/internal/model"
	"kitchen-core/internal/money"
	"kitchen-core/internal/repository"
	"kitchen-core/internal/screener"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo    repository.MenuRepository
	productRepo repository.ProductRepository
	screener    screener.Screener
	logger      zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(
	menuRepo repository.MenuRepository,
	productRepo repository.ProductRepository,
	screener screener.Screener,
	logger zerolog.Logger,
) MenuService {
	return &menuService{
		menuRepo:    menuRepo,
		productRepo: productRepo,
		screener:    screener,
		logger:      logger.With().Str("service", "menu").Logger(),
	}
}

// Create registers a new menu. Creation is strict: the menu must start
// price-consistent or the whole operation fails.
func (s *menuService) Create(ctx context.Context, req *model.MenuCreateRequest) (*model.Menu, error) {
	if req == nil {
		return nil, model.InvalidArgument("menu request is required")
	}

	if req.Name == "" {
		return nil, model.InvalidArgument("name is required")
	}
	flagged, err := s.screener.ContainsDisallowedContent(ctx, req.Name)
	if err != nil {
		s.logger.Error().Err(err).Msg("name screening failed")
		return nil, fmt.Errorf("failed to screen name: %w", err)
	}
	if flagged {
		s.logger.Warn().Msg("name rejected by screener")
		return nil, model.InvalidArgument("name contains disallowed content")
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		s.logger.Warn().Str("price", req.Price).Msg("invalid menu price")
		return nil, model.InvalidArgument("menu price must be a non-negative amount")
	}

	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve products")
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}
	productMap := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	menu, err := model.NewMenu(req.Name, price, req.Sellable, req.Items, productMap)
	if err != nil {
		s.logger.Warn().Err(err).Msg("menu validation failed")
		return nil, err
	}

	tx, err := s.menuRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.menuRepo.Create(ctx, tx, menu); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	s.logger.Info().
		Str("menu_id", menu.ID.String()).
		Str("price", menu.Price.String()).
		Int("item_count", len(menu.Items)).
		Bool("sellable", menu.Sellable).
		Msg("menu created")

	return menu, nil
}

// ChangePrice applies an explicit menu price change; it must be immediately
// valid against the composition or the operation fails.
func (s *menuService) ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Menu, error) {
	if req == nil {
		return nil, model.InvalidArgument("price change request is required")
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		s.logger.Warn().Str("price", req.Price).Msg("invalid menu price")
		return nil, model.InvalidArgument("menu price must be a non-negative amount")
	}

	return s.mutate(ctx, id, "change menu price", func(menu *model.Menu) error {
		return menu.ChangePrice(price)
	})
}

// Show makes a menu sellable again.
func (s *menuService) Show(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	return s.mutate(ctx, id, "show menu", func(menu *model.Menu) error {
		return menu.Show()
	})
}

// Hide withdraws a menu from sale.
func (s *menuService) Hide(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	return s.mutate(ctx, id, "hide menu", func(menu *model.Menu) error {
		menu.Hide()
		return nil
	})
}

// mutate loads a menu under a row lock, applies fn, and persists the result
// in one transaction.
func (s *menuService) mutate(ctx context.Context, id uuid.UUID, op string, fn func(*model.Menu) error) (*model.Menu, error) {
	tx, err := s.menuRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	menu, err := s.menuRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	if menu == nil {
		err = model.NotFound("menu not found")
		return nil, err
	}

	if err = fn(menu); err != nil {
		s.logger.Warn().Err(err).Str("menu_id", id.String()).Msgf("refused to %s", op)
		return nil, err
	}

	if err = s.menuRepo.Update(ctx, tx, menu); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	s.logger.Info().
		Str("menu_id", id.String()).
		Str("price", menu.Price.String()).
		Bool("sellable", menu.Sellable).
		Msgf("%s succeeded", op)

	return menu, nil
}

// GetByID retrieves a single menu by ID.
func (s *menuService) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to get menu")
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	if menu == nil {
		return nil, model.NotFound("menu not found")
	}
	return menu, nil
}

// GetAll retrieves all menus.
func (s *menuService) GetAll(ctx context.Context) ([]model.Menu, error) {
	menus, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get menus")
		return nil, fmt.Errorf("failed to get menus: %w", err)
	}
	return menus, nil
}
