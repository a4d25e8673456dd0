package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
)

// Service exposes order operations to the HTTP layer.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]models.Order, error)
	Create(ctx context.Context, input CreateInput) (*models.Order, error)
	Update(ctx context.Context, input UpdateInput) (*models.Order, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds an order service bound to the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Order, error) {
	orders, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return orders, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Order, error) {
	if input.UserID <= 0 || len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "faltan campos requeridos: userId, items")
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting orders")
	}

	now := s.now()
	order := &models.Order{
		ID:              fmt.Sprintf("ORD-%03d", count+1),
		UserID:          input.UserID,
		Status:          enums.OrderStatusPending,
		Total:           input.Total,
		Subtotal:        input.Subtotal,
		Tax:             input.Tax,
		Shipping:        input.Shipping,
		Items:           input.Items,
		PaymentMethod:   orEmptyMap(input.PaymentMethod),
		ShippingAddress: orEmptyMap(input.ShippingAddress),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.Order, error) {
	if input.ID == "" || input.Status == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ID del pedido y estado son requeridos")
	}
	status, err := enums.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
	}

	order, err := s.repo.Get(ctx, input.ID)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pedido no encontrado")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching order")
	}

	now := s.now()
	order.Status = status
	if input.TrackingNumber != nil && *input.TrackingNumber != "" {
		order.TrackingNumber = input.TrackingNumber
	}
	order.UpdatedAt = now
	switch status {
	case enums.OrderStatusShipped:
		shippedAt := now
		order.ShippedAt = &shippedAt
	case enums.OrderStatusDelivered:
		deliveredAt := now
		order.DeliveredAt = &deliveredAt
	}

	updated, err := s.repo.Update(ctx, order)
	if errors.Is(err, ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "pedido no encontrado")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating order")
	}
	return updated, nil
}

func orEmptyMap(value map[string]any) map[string]any {
	if value == nil {
		return map[string]any{}
	}
	return value
}
