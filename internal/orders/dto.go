package orders

import (
	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

// CreateInput carries the fields accepted when placing an order. Amounts
// default to zero when omitted, matching the mock checkout.
type CreateInput struct {
	UserID          int                `json:"userId" validate:"required,gt=0"`
	Items           []models.OrderItem `json:"items" validate:"required,min=1"`
	Total           decimal.Decimal    `json:"total"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Tax             decimal.Decimal    `json:"tax"`
	Shipping        decimal.Decimal    `json:"shipping"`
	PaymentMethod   map[string]any     `json:"paymentMethod"`
	ShippingAddress map[string]any     `json:"shippingAddress"`
}

// UpdateInput carries a status change and optional tracking number.
type UpdateInput struct {
	ID             string  `json:"id" validate:"required"`
	Status         string  `json:"status" validate:"required"`
	TrackingNumber *string `json:"trackingNumber"`
}
