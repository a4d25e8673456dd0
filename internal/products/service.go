package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
)

// Service exposes catalog operations to the HTTP layer.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]models.Product, error)
	Get(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, input CreateInput) (*models.Product, error)
	Update(ctx context.Context, id int, input UpdateInput) (*models.Product, error)
	Delete(ctx context.Context, id int) (*models.Product, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a product service bound to the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Product, error) {
	products, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching product")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Product, error) {
	if input.Name == "" || !input.Price.IsPositive() || input.Category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "faltan campos requeridos: name, price, category")
	}
	category, err := enums.ParseProductCategory(input.Category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	if input.OriginalPrice != nil && input.OriginalPrice.LessThan(input.Price) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "originalPrice must be >= price")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "allocating product id")
	}

	now := s.now()
	product := &models.Product{
		ID:            id,
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Image:         input.Image,
		Category:      category,
		Rating:        input.Rating,
		Specs:         input.Specs,
		Description:   input.Description,
		Brand:         input.Brand,
		Stock:         input.Stock,
		IsNew:         input.IsNew,
		Discount:      input.Discount,
		Featured:      input.Featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id int, input UpdateInput) (*models.Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ID del producto es requerido")
	}

	current, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching product")
	}

	if err := mergeUpdate(current, input); err != nil {
		return nil, err
	}
	current.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, current)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ID del producto es requerido")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return deleted, nil
}

func mergeUpdate(product *models.Product, input UpdateInput) error {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Category != nil {
		category, err := enums.ParseProductCategory(*input.Category)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		product.Category = category
	}
	if input.Rating != nil {
		if *input.Rating < 0 || *input.Rating > 5 {
			return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
		}
		product.Rating = *input.Rating
	}
	if input.Specs != nil {
		product.Specs = input.Specs
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "stock must be non-negative")
		}
		product.Stock = *input.Stock
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	return nil
}
