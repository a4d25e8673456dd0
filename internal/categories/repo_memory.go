package categories

import (
	"context"
	"sync"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

type memoryRepository struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewMemoryRepository builds a repository pre-loaded with the given categories.
func NewMemoryRepository(seeded []models.Category) Repository {
	categories := make([]models.Category, len(seeded))
	copy(categories, seeded)
	return &memoryRepository{categories: categories}
}

func (r *memoryRepository) List(_ context.Context, featured *bool) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		if featured != nil && category.Featured != *featured {
			continue
		}
		matched = append(matched, category)
	}
	return matched, nil
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if category.Slug == slug {
			found := category
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Create(_ context.Context, category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if existing.Slug == category.Slug {
			return nil, ErrDuplicateSlug
		}
	}
	if category.ID == 0 {
		category.ID = r.nextIDLocked()
	}
	r.categories = append(r.categories, *category)
	created := *category
	return &created, nil
}

func (r *memoryRepository) NextID(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextIDLocked(), nil
}

func (r *memoryRepository) nextIDLocked() int {
	max := 0
	for _, category := range r.categories {
		if category.ID > max {
			max = category.ID
		}
	}
	return max + 1
}
