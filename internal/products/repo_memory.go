package products

import (
	"context"
	"strings"
	"sync"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

// memoryRepository keeps the catalog in process memory. It is the default
// backend and mirrors the mock in-memory arrays the API started from.
type memoryRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemoryRepository builds a repository pre-loaded with the given products.
func NewMemoryRepository(seeded []models.Product) Repository {
	products := make([]models.Product, len(seeded))
	copy(products, seeded)
	return &memoryRepository{products: products}
}

func (r *memoryRepository) List(_ context.Context, filters ListFilters) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	search := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, product := range r.products {
		if filters.Category != nil && product.Category != *filters.Category {
			continue
		}
		if filters.Featured != nil && product.Featured != *filters.Featured {
			continue
		}
		if search != "" && !matchesListSearch(product, search) {
			continue
		}
		matched = append(matched, product)
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

func matchesListSearch(product models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(product.Name), needle) ||
		strings.Contains(strings.ToLower(product.Description), needle) ||
		strings.Contains(strings.ToLower(product.Brand), needle)
}

func (r *memoryRepository) Get(_ context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextIDLocked()
	}
	r.products = append(r.products, *product)
	created := *product
	return &created, nil
}

func (r *memoryRepository) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			updated := *product
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Delete(_ context.Context, id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			deleted := r.products[i]
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) NextID(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextIDLocked(), nil
}

// nextIDLocked returns max(existing)+1, matching the mock API's id scheme.
func (r *memoryRepository) nextIDLocked() int {
	max := 0
	for _, product := range r.products {
		if product.ID > max {
			max = product.ID
		}
	}
	return max + 1
}
