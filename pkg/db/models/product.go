package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// Product is a catalog listing. Catalog rows are immutable from the filter
// engine's point of view; only the products API mutates them.
type Product struct {
	ID            int                   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string                `gorm:"column:name;not null" json:"name"`
	Description   string                `gorm:"column:description" json:"description"`
	Price         decimal.Decimal       `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal      `gorm:"column:original_price;type:numeric(10,2)" json:"originalPrice,omitempty"`
	Image         string                `gorm:"column:image" json:"image"`
	Category      enums.ProductCategory `gorm:"column:category;index" json:"category"`
	Rating        float64               `gorm:"column:rating" json:"rating"`
	Specs         []string              `gorm:"column:specs;type:text;serializer:json" json:"specs"`
	Brand         string                `gorm:"column:brand" json:"brand"`
	Stock         int                   `gorm:"column:stock;not null;default:0" json:"stock"`
	IsNew         bool                  `gorm:"column:is_new;not null;default:false" json:"isNew"`
	Discount      int                   `gorm:"column:discount;not null;default:0" json:"discount"`
	Featured      bool                  `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
