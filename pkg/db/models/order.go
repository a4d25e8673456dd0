package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// OrderItem snapshots a purchased product at order time.
type OrderItem struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// Order is a mock purchase record. Status carries no transition guard: any
// value is settable from any other, matching the storefront API.
type Order struct {
	ID              string            `gorm:"column:id;primaryKey" json:"id"`
	UserID          int               `gorm:"column:user_id;index" json:"userId"`
	Status          enums.OrderStatus `gorm:"column:status;not null" json:"status"`
	Subtotal        decimal.Decimal   `gorm:"column:subtotal;type:numeric(10,2)" json:"subtotal"`
	Tax             decimal.Decimal   `gorm:"column:tax;type:numeric(10,2)" json:"tax"`
	Shipping        decimal.Decimal   `gorm:"column:shipping;type:numeric(10,2)" json:"shipping"`
	Total           decimal.Decimal   `gorm:"column:total;type:numeric(10,2)" json:"total"`
	Items           []OrderItem       `gorm:"column:items;type:text;serializer:json" json:"items"`
	PaymentMethod   map[string]any    `gorm:"column:payment_method;type:text;serializer:json" json:"paymentMethod"`
	ShippingAddress map[string]any    `gorm:"column:shipping_address;type:text;serializer:json" json:"shippingAddress"`
	TrackingNumber  *string           `gorm:"column:tracking_number" json:"trackingNumber"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	ShippedAt       *time.Time        `gorm:"column:shipped_at" json:"shippedAt,omitempty"`
	DeliveredAt     *time.Time        `gorm:"column:delivered_at" json:"deliveredAt,omitempty"`
}
