package service

import (
	"context"
	"fmt"
	"time"

	"kitchen-core/internal/model"
	"kitchen-core/internal/money"
	"kitchen-core/internal/repository"
	"kitchen-core/internal/screener"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	menuRepo    repository.MenuRepository
	screener    screener.Screener
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	menuRepo repository.MenuRepository,
	screener screener.Screener,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		menuRepo:    menuRepo,
		screener:    screener,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create registers a new product with a screened name.
func (s *productService) Create(ctx context.Context, req *model.ProductCreateRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.InvalidArgument("product request is required")
	}

	name, err := s.screenName(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		s.logger.Warn().Str("price", req.Price).Msg("invalid product price")
		return nil, model.InvalidArgument("product price must be a non-negative amount")
	}

	product := &model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		CreatedAt: time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("price", product.Price.String()).
		Msg("product created")

	return product, nil
}

// ChangePrice updates a product's price and re-evaluates every dependent
// menu in the same transaction. A menu whose price now exceeds its
// constituent total is hidden; unrelated menus are untouched.
func (s *productService) ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.InvalidArgument("price change request is required")
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		s.logger.Warn().Str("price", req.Price).Msg("invalid product price")
		return nil, model.InvalidArgument("product price must be a non-negative amount")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.NotFound("product not found")
	}

	tx, err := s.productRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to change product price: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.productRepo.UpdatePrice(ctx, tx, id, price); err != nil {
		return nil, fmt.Errorf("failed to change product price: %w", err)
	}

	// The cascade is eager: consistency must hold at every observable
	// point, not just at read time.
	menus, err := s.menuRepo.GetByProductIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependent menus: %w", err)
	}

	hidden := 0
	for i := range menus {
		menu := &menus[i]
		if !menu.RefreshItemPrices(id, price) {
			continue
		}
		if !menu.PriceConsistent() && menu.Sellable {
			menu.Hide()
			hidden++
		}
		if err = s.menuRepo.Update(ctx, tx, menu); err != nil {
			return nil, fmt.Errorf("failed to update dependent menu: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to change product price: %w", err)
	}

	product.Price = price

	s.logger.Info().
		Str("product_id", id.String()).
		Str("price", price.String()).
		Int("dependent_menus", len(menus)).
		Int("menus_hidden", hidden).
		Msg("product price changed")

	return product, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.NotFound("product not found")
	}
	return product, nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// screenName validates a name and passes it through the external screener.
// A screener outage surfaces as an error, never as "clean".
func (s *productService) screenName(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", model.InvalidArgument("name is required")
	}

	flagged, err := s.screener.ContainsDisallowedContent(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Msg("name screening failed")
		return "", fmt.Errorf("failed to screen name: %w", err)
	}
	if flagged {
		s.logger.Warn().Msg("name rejected by screener")
		return "", model.InvalidArgument("name contains disallowed content")
	}

	return name, nil
}
