package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"productstore/internal/apierror"
)

// Category is the closed classification set for products.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories returns every valid category, in declaration order.
func Categories() []Category {
	return []Category{
		CategoryUnknown,
		CategoryCloths,
		CategoryFood,
		CategoryHousewares,
		CategoryAutomotive,
		CategoryTools,
	}
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryUnknown, CategoryCloths, CategoryFood,
		CategoryHousewares, CategoryAutomotive, CategoryTools:
		return true
	}
	return false
}

// ParseCategory converts external input (seed data, CLI flags) into a
// Category, rejecting anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return CategoryUnknown, fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Product represents a sellable item. ID is zero until the first successful
// create; the database assigns it and it is immutable afterwards.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"index;not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text;not null" json:"description" validate:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price" validate:"min=0"`
	Available   bool            `gorm:"not null" json:"available"`
	Category    Category        `gorm:"type:varchar(32);not null" json:"category" validate:"required"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) String() string {
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}

// Validate checks required fields, price range, and category membership.
// Returns a *apierror.ValidationError with a field→reason map, or nil.
func (p *Product) Validate() error {
	fields := validateStruct(p)
	if !p.Category.Valid() {
		fields["category"] = fmt.Sprintf("must be one of %v", Categories())
	}
	if len(fields) > 0 {
		return apierror.NewValidation(fields)
	}
	return nil
}
