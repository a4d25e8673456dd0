package categories

import (
	"context"
	"errors"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

// ErrNotFound is returned when a category id has no match.
var ErrNotFound = errors.New("categories: not found")

// ErrDuplicateSlug is returned when a slug is already taken.
var ErrDuplicateSlug = errors.New("categories: duplicate slug")

// Repository defines persistence operations for the category list.
type Repository interface {
	List(ctx context.Context, featured *bool) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	NextID(ctx context.Context) (int, error)
}
