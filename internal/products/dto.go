package products

import (
	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// ListFilters narrows a catalog listing. Nil/zero fields disable the filter.
type ListFilters struct {
	Category *enums.ProductCategory
	Featured *bool
	Search   string
	Limit    int
}

// CreateInput carries the fields accepted when creating a product.
type CreateInput struct {
	Name          string           `json:"name" validate:"required"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         string           `json:"image"`
	Category      string           `json:"category" validate:"required"`
	Rating        float64          `json:"rating" validate:"gte=0,lte=5"`
	Specs         []string         `json:"specs"`
	Description   string           `json:"description"`
	Brand         string           `json:"brand"`
	Stock         int              `json:"stock" validate:"gte=0"`
	IsNew         bool             `json:"isNew"`
	Discount      int              `json:"discount" validate:"gte=0,lte=100"`
	Featured      bool             `json:"featured"`
}

// UpdateInput merges non-nil fields into an existing product.
type UpdateInput struct {
	Name          *string          `json:"name"`
	Price         *decimal.Decimal `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Image         *string          `json:"image"`
	Category      *string          `json:"category"`
	Rating        *float64         `json:"rating"`
	Specs         []string         `json:"specs"`
	Description   *string          `json:"description"`
	Brand         *string          `json:"brand"`
	Stock         *int             `json:"stock"`
	IsNew         *bool            `json:"isNew"`
	Discount      *int             `json:"discount"`
	Featured      *bool            `json:"featured"`
}
