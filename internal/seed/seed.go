// Package seed holds the storefront's demo dataset. The memory repositories
// start from these fixtures and the seed command loads them into SQL.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

func money(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func moneyPtr(value int64) *decimal.Decimal {
	d := money(value)
	return &d
}

// Products returns a fresh copy of the demo catalog.
func Products(now time.Time) []models.Product {
	return []models.Product{
		{
			ID:            1,
			Name:          "Gaming PC RTX 4090",
			Price:         money(3299),
			OriginalPrice: moneyPtr(3599),
			Image:         "/placeholder.svg?height=400&width=600&text=Gaming+PC+RTX+4090",
			Category:      enums.ProductCategoryDesktop,
			Rating:        4.8,
			Specs:         []string{"Intel i9-13900K", "RTX 4090", "64GB DDR5", "2TB NVMe"},
			Description:   "PC gaming de alta gama con la tarjeta gráfica más potente del mercado. Domina cualquier juego en 4K.",
			Discount:      8,
			Brand:         "Custom Build",
			Stock:         15,
			Featured:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            2,
			Name:          `iMac 24" M3`,
			Price:         money(1699),
			OriginalPrice: moneyPtr(1899),
			Image:         "/placeholder.svg?height=400&width=600&text=iMac+24+M3",
			Category:      enums.ProductCategoryDesktop,
			Rating:        4.7,
			Specs:         []string{"Apple M3", "16GB RAM", "512GB SSD", `24" 4.5K Retina`},
			Description:   "All-in-one elegante con colores vibrantes y el potente chip M3 para creativos y profesionales.",
			Discount:      11,
			Brand:         "Apple",
			Stock:         8,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            3,
			Name:          `MacBook Pro M3 16"`,
			Price:         money(2499),
			OriginalPrice: moneyPtr(2799),
			Image:         "/placeholder.svg?height=400&width=600&text=MacBook+Pro+M3",
			Category:      enums.ProductCategoryLaptop,
			Rating:        4.9,
			Specs:         []string{"Apple M3 Pro", "32GB RAM", "1TB SSD", `16.2" Retina`},
			Description:   "La laptop más potente de Apple con el revolucionario chip M3 Pro. Perfecta para profesionales creativos.",
			IsNew:         true,
			Discount:      11,
			Brand:         "Apple",
			Stock:         12,
			Featured:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            4,
			Name:          "iPhone 15 Pro Max",
			Price:         money(1199),
			OriginalPrice: moneyPtr(1299),
			Image:         "/placeholder.svg?height=400&width=600&text=iPhone+15+Pro+Max",
			Category:      enums.ProductCategoryMobile,
			Rating:        4.7,
			Specs:         []string{"A17 Pro", "256GB", "48MP Camera", `6.7" Display`},
			Description:   "El iPhone más avanzado con titanio, cámara profesional y el chip A17 Pro más rápido.",
			IsNew:         true,
			Discount:      8,
			Brand:         "Apple",
			Stock:         25,
			Featured:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            5,
			Name:          "AirPods Pro 2",
			Price:         money(249),
			OriginalPrice: moneyPtr(279),
			Image:         "/placeholder.svg?height=400&width=600&text=AirPods+Pro+2",
			Category:      enums.ProductCategoryAccessories,
			Rating:        4.8,
			Specs:         []string{"Cancelación de ruido", "Audio espacial", "Chip H2", "30h batería"},
			Description:   "Auriculares inalámbricos premium con cancelación de ruido adaptativa y audio espacial.",
			Discount:      11,
			Brand:         "Apple",
			Stock:         50,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

// Categories returns a fresh copy of the demo category list.
func Categories(now time.Time) []models.Category {
	return []models.Category{
		{
			ID:           1,
			Name:         "Desktop",
			Slug:         "desktop",
			Description:  "Computadoras de escritorio potentes para gaming y trabajo profesional",
			Icon:         "monitor",
			Gradient:     "from-blue-600 to-cyan-600",
			ProductCount: 15,
			Featured:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           2,
			Name:         "Laptops",
			Slug:         "laptop",
			Description:  "Portátiles para trabajo, gaming y uso personal",
			Icon:         "cpu",
			Gradient:     "from-purple-600 to-pink-600",
			ProductCount: 23,
			Featured:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           3,
			Name:         "Móviles",
			Slug:         "mobile",
			Description:  "Smartphones de última generación con tecnología avanzada",
			Icon:         "smartphone",
			Gradient:     "from-green-600 to-emerald-600",
			ProductCount: 18,
			Featured:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           4,
			Name:         "Accesorios",
			Slug:         "accessories",
			Description:  "Periféricos y accesorios tecnológicos",
			Icon:         "headphones",
			Gradient:     "from-orange-600 to-red-600",
			ProductCount: 32,
			Featured:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Orders returns the demo order history.
func Orders() []models.Order {
	shippedAt := time.Date(2024, 1, 22, 11, 30, 0, 0, time.UTC)
	deliveredAt := time.Date(2024, 1, 20, 14, 45, 0, 0, time.UTC)
	tracking1 := "TRK123456789"
	tracking2 := "TRK987654321"

	return []models.Order{
		{
			ID:       "ORD-001",
			UserID:   1,
			Status:   enums.OrderStatusDelivered,
			Total:    money(2499),
			Subtotal: money(2299),
			Tax:      money(200),
			Shipping: money(0),
			Items: []models.OrderItem{
				{
					ProductID: 3,
					Name:      `MacBook Pro M3 16"`,
					Price:     money(2499),
					Quantity:  1,
					Image:     "/placeholder.svg?height=60&width=60&text=MacBook",
				},
			},
			PaymentMethod: map[string]any{
				"type":  "card",
				"last4": "1234",
				"brand": "visa",
			},
			ShippingAddress: map[string]any{
				"name":    "Juan Pérez",
				"street":  "Calle Principal 123",
				"city":    "Ciudad de México",
				"state":   "CDMX",
				"zipCode": "01000",
				"country": "México",
			},
			TrackingNumber: &tracking1,
			CreatedAt:      time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:      deliveredAt,
			DeliveredAt:    &deliveredAt,
		},
		{
			ID:       "ORD-002",
			UserID:   1,
			Status:   enums.OrderStatusShipped,
			Total:    money(1199),
			Subtotal: money(1099),
			Tax:      money(100),
			Shipping: money(0),
			Items: []models.OrderItem{
				{
					ProductID: 4,
					Name:      "iPhone 15 Pro Max",
					Price:     money(1199),
					Quantity:  1,
					Image:     "/placeholder.svg?height=60&width=60&text=iPhone",
				},
			},
			PaymentMethod: map[string]any{
				"type":  "card",
				"last4": "5678",
				"brand": "mastercard",
			},
			ShippingAddress: map[string]any{
				"name":    "Juan Pérez",
				"street":  "Calle Principal 123",
				"city":    "Ciudad de México",
				"state":   "CDMX",
				"zipCode": "01000",
				"country": "México",
			},
			TrackingNumber: &tracking2,
			CreatedAt:      time.Date(2024, 1, 20, 9, 15, 0, 0, time.UTC),
			UpdatedAt:      shippedAt,
			ShippedAt:      &shippedAt,
		},
	}
}

// Validate checks the fixtures for internal consistency, aggregating every
// violation instead of stopping at the first.
func Validate(products []models.Product, categories []models.Category, orders []models.Order) error {
	var err error

	seenProductIDs := map[int]struct{}{}
	for _, product := range products {
		if _, dup := seenProductIDs[product.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("product %d: duplicate id", product.ID))
		}
		seenProductIDs[product.ID] = struct{}{}
		if !product.Price.IsPositive() {
			err = multierr.Append(err, fmt.Errorf("product %d: price must be positive", product.ID))
		}
		if product.OriginalPrice != nil && product.OriginalPrice.LessThan(product.Price) {
			err = multierr.Append(err, fmt.Errorf("product %d: original price below price", product.ID))
		}
		if !product.Category.IsValid() {
			err = multierr.Append(err, fmt.Errorf("product %d: invalid category %q", product.ID, product.Category))
		}
		if product.Rating < 0 || product.Rating > 5 {
			err = multierr.Append(err, fmt.Errorf("product %d: rating out of range", product.ID))
		}
		if product.Stock < 0 {
			err = multierr.Append(err, fmt.Errorf("product %d: negative stock", product.ID))
		}
	}

	seenSlugs := map[string]struct{}{}
	for _, category := range categories {
		if _, dup := seenSlugs[category.Slug]; dup {
			err = multierr.Append(err, fmt.Errorf("category %d: duplicate slug %q", category.ID, category.Slug))
		}
		seenSlugs[category.Slug] = struct{}{}
		if category.Name == "" || category.Slug == "" {
			err = multierr.Append(err, fmt.Errorf("category %d: name and slug are required", category.ID))
		}
	}

	for _, order := range orders {
		if order.UserID <= 0 {
			err = multierr.Append(err, fmt.Errorf("order %s: user id is required", order.ID))
		}
		if len(order.Items) == 0 {
			err = multierr.Append(err, fmt.Errorf("order %s: at least one item is required", order.ID))
		}
		if !order.Status.IsValid() {
			err = multierr.Append(err, fmt.Errorf("order %s: invalid status %q", order.ID, order.Status))
		}
	}

	return err
}
