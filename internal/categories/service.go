package categories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
)

// CreateInput carries the fields accepted when creating a category.
type CreateInput struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
	Featured    bool   `json:"featured"`
}

// Service exposes category operations to the HTTP layer.
type Service interface {
	List(ctx context.Context, featured *bool) ([]models.Category, error)
	Create(ctx context.Context, input CreateInput) (*models.Category, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a category service bound to the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("categories repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, featured *bool) ([]models.Category, error) {
	categories, err := s.repo.List(ctx, featured)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	return categories, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Category, error) {
	if input.Name == "" || input.Slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "faltan campos requeridos: name, slug")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "allocating category id")
	}

	now := s.now()
	category := &models.Category{
		ID:          id,
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Icon:        input.Icon,
		Gradient:    input.Gradient,
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, category)
	if errors.Is(err, ErrDuplicateSlug) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ya existe una categoría con ese slug")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating category")
	}
	return created, nil
}
