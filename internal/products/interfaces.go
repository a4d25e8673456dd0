package products

import (
	"context"
	"errors"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

// ErrNotFound is returned when a product id has no match.
var ErrNotFound = errors.New("products: not found")

// Repository defines persistence operations for the product catalog.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int) (*models.Product, error)
	NextID(ctx context.Context) (int, error)
}
