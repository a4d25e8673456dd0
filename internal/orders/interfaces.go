package orders

import (
	"context"
	"errors"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// ErrNotFound is returned when an order id has no match.
var ErrNotFound = errors.New("orders: not found")

// ListFilters narrows an order listing. Nil/zero fields disable the filter.
type ListFilters struct {
	UserID *int
	Status *enums.OrderStatus
	Limit  int
}

// Repository defines persistence operations for the order history.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) (*models.Order, error)
	Count(ctx context.Context) (int, error)
}
