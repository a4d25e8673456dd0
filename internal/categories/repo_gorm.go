package categories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository builds a SQL-backed category repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) List(ctx context.Context, featured *bool) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Model(&models.Category{})
	if featured != nil {
		query = query.Where("featured = ?", *featured)
	}
	var categories []models.Category
	if err := query.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *gormRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if _, err := r.FindBySlug(ctx, category.Slug); err == nil {
		return nil, ErrDuplicateSlug
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *gormRepository) NextID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
