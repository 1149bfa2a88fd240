package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productstore/internal/apierror"
)

func validProduct() *Product {
	return &Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.RequireFromString("12.50"),
		Available:   true,
		Category:    CategoryCloths,
	}
}

func TestProductConstruction(t *testing.T) {
	p := validProduct()

	assert.Equal(t, uint(0), p.ID, "ID must stay zero until the first create")
	assert.Equal(t, "Fedora", p.Name)
	assert.Equal(t, "A red hat", p.Description)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, p.Available)
	assert.Equal(t, CategoryCloths, p.Category)
	assert.Equal(t, "<Product Fedora id=[0]>", p.String())
	assert.NoError(t, p.Validate())
}

func TestProductValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Product)
		badKeys []string
	}{
		{
			name:   "valid product passes",
			mutate: func(p *Product) {},
		},
		{
			name:   "zero price is allowed",
			mutate: func(p *Product) { p.Price = decimal.Zero },
		},
		{
			name:   "unavailable product passes",
			mutate: func(p *Product) { p.Available = false },
		},
		{
			name:    "missing name",
			mutate:  func(p *Product) { p.Name = "" },
			badKeys: []string{"name"},
		},
		{
			name:    "missing description",
			mutate:  func(p *Product) { p.Description = "" },
			badKeys: []string{"description"},
		},
		{
			name:    "negative price",
			mutate:  func(p *Product) { p.Price = decimal.RequireFromString("-0.01") },
			badKeys: []string{"price"},
		},
		{
			name:    "category outside the closed set",
			mutate:  func(p *Product) { p.Category = Category("GADGETS") },
			badKeys: []string{"category"},
		},
		{
			name:    "empty category",
			mutate:  func(p *Product) { p.Category = "" },
			badKeys: []string{"category"},
		},
		{
			name: "everything wrong at once",
			mutate: func(p *Product) {
				p.Name = ""
				p.Description = ""
				p.Price = decimal.RequireFromString("-1")
				p.Category = Category("nope")
			},
			badKeys: []string{"name", "description", "price", "category"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(p)

			err := p.Validate()
			if len(tc.badKeys) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve *apierror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Len(t, ve.Fields, len(tc.badKeys))
			for _, key := range tc.badKeys {
				assert.Contains(t, ve.Fields, key)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCategory("GADGETS")
	assert.Error(t, err)
	_, err = ParseCategory("cloths") // case matters: the stored value is the exact token
	assert.Error(t, err)
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryTools.Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("SPORTS").Valid())
}
