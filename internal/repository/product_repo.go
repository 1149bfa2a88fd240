package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"productstore/internal/apierror"
	"productstore/internal/model"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProductRepository interface {
	// Create persists p and lets the database assign its ID.
	Create(ctx context.Context, p *model.Product) error

	// FindByID retrieves a single product by its primary key.
	// Returns apierror.ErrNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uint) (*model.Product, error)

	// All returns every persisted product ordered by ID.
	// An empty store yields an empty slice, not nil-with-error.
	All(ctx context.Context) ([]model.Product, error)

	// Update persists p's in-memory field values over the row with p.ID.
	// Returns apierror.ErrNotFound if that row no longer exists.
	Update(ctx context.Context, p *model.Product) error

	// Delete removes the row with the given ID permanently.
	// Deleting an already-absent row is not an error.
	Delete(ctx context.Context, id uint) error

	FindByName(ctx context.Context, name string) ([]model.Product, error)
	FindByAvailability(ctx context.Context, available bool) ([]model.Product, error)
	FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error)
	FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error)

	// FindByPriceString normalizes a textual price (surrounding spaces and
	// quotes tolerated) and delegates to FindByPrice, so both entry points
	// produce identical result sets for the same value.
	FindByPriceString(ctx context.Context, raw string) ([]model.Product, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) All(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	// Explicit column map: Updates with a struct would skip zero values
	// (available=false, empty description) instead of persisting them.
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"available":   p.Available,
		"category":    p.Category,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("name = ?", name).Find(&products).Error
	return products, err
}

func (r *productRepo) FindByAvailability(ctx context.Context, available bool) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("available = ?", available).Find(&products).Error
	return products, err
}

func (r *productRepo) FindByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error
	return products, err
}

func (r *productRepo) FindByPrice(ctx context.Context, price decimal.Decimal) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("price = ?", price).Find(&products).Error
	return products, err
}

func (r *productRepo) FindByPriceString(ctx context.Context, raw string) ([]model.Product, error) {
	price, err := decimal.NewFromString(strings.Trim(raw, ` "`))
	if err != nil {
		return nil, apierror.NewValidation(map[string]string{"price": "not a valid decimal"})
	}
	return r.FindByPrice(ctx, price)
}
