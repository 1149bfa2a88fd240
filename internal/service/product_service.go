// Package service holds the business rules sitting between callers and the
// repository: constructor-level validation, error mapping, and mutation
// logging. The repository stays dumb; policy lives here.
package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"productstore/internal/apierror"
	"productstore/internal/model"
	"productstore/internal/repository"
)

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	// Create validates p and persists it. p.ID must be zero; the store
	// assigns the ID on success.
	Create(ctx context.Context, p *model.Product) error

	// Get returns the product with the given ID, or apierror.ErrNotFound.
	Get(ctx context.Context, id uint) (*model.Product, error)

	// All lists every product in the store's natural order.
	All(ctx context.Context) ([]model.Product, error)

	// Update validates p and persists its fields over the existing row.
	// Returns apierror.ErrNotFound when p.ID no longer exists.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes the product permanently. Idempotent.
	Delete(ctx context.Context, id uint) error

	FindByName(ctx context.Context, name string) ([]model.Product, error)
	FindByAvailability(ctx context.Context, available bool) ([]model.Product, error)
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error)
	FindByPriceString(ctx context.Context, raw string) ([]model.Product, error)
}

type productService struct {
	repo repository.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, log zerolog.Logger) ProductService {
	return &productService{repo: repo, log: log}
}

func (s *productService) Create(ctx context.Context, p *model.Product) error {
	if p.ID != 0 {
		s.log.Warn().Uint("product_id", p.ID).Msg("create rejected: id already set")
		return apierror.NewValidation(map[string]string{"id": "must be unset on create"})
	}
	if err := p.Validate(); err != nil {
		s.log.Warn().Str("name", p.Name).Err(err).Msg("create rejected: invalid product")
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.log.Info().Uint("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) All(ctx context.Context) ([]model.Product, error) {
	return s.repo.All(ctx)
}

func (s *productService) Update(ctx context.Context, p *model.Product) error {
	if p.ID == 0 {
		return apierror.NewValidation(map[string]string{"id": "required for update"})
	}
	if err := p.Validate(); err != nil {
		s.log.Warn().Uint("product_id", p.ID).Err(err).Msg("update rejected: invalid product")
		return err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.log.Info().Uint("product_id", p.ID).Msg("product updated")
	return nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Uint("product_id", id).Msg("product deleted")
	return nil
}

func (s *productService) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *productService) FindByAvailability(ctx context.Context, available bool) ([]model.Product, error) {
	return s.repo.FindByAvailability(ctx, available)
}

func (s *productService) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *productService) FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error) {
	return s.repo.FindByPrice(ctx, price)
}

func (s *productService) FindByPriceString(ctx context.Context, raw string) ([]model.Product, error) {
	return s.repo.FindByPriceString(ctx, raw)
}
