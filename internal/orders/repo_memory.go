package orders

import (
	"context"
	"sort"
	"sync"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

type memoryRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewMemoryRepository builds a repository pre-loaded with the given orders.
func NewMemoryRepository(seeded []models.Order) Repository {
	orders := make([]models.Order, len(seeded))
	copy(orders, seeded)
	return &memoryRepository{orders: orders}
}

func (r *memoryRepository) List(_ context.Context, filters ListFilters) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if filters.UserID != nil && order.UserID != *filters.UserID {
			continue
		}
		if filters.Status != nil && order.Status != *filters.Status {
			continue
		}
		matched = append(matched, order)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *order)
	created := *order
	return &created, nil
}

func (r *memoryRepository) Update(_ context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			r.orders[i] = *order
			updated := *order
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}
