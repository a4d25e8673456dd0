package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/internal/seed"
	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
)

func newTestService(t *testing.T) *service {
	t.Helper()
	svc, err := NewService(NewMemoryRepository(seed.Orders()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc.(*service)
}

func sampleItems() []models.OrderItem {
	return []models.OrderItem{
		{ProductID: 5, Name: "AirPods Pro 2", Price: decimal.NewFromInt(249), Quantity: 2},
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	orders, err := svc.List(context.Background(), ListFilters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "ORD-002" || orders[1].ID != "ORD-001" {
		t.Fatalf("expected newest first, got %s, %s", orders[0].ID, orders[1].ID)
	}
}

func TestListFiltersByUserAndStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	userID := 1
	shipped := enums.OrderStatusShipped
	orders, err := svc.List(ctx, ListFilters{UserID: &userID, Status: &shipped})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "ORD-002" {
		t.Fatalf("expected ORD-002, got %v", orders)
	}

	otherUser := 42
	orders, err = svc.List(ctx, ListFilters{UserID: &otherUser})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders for user 42, got %d", len(orders))
	}
}

func TestListAppliesLimit(t *testing.T) {
	svc := newTestService(t)
	orders, err := svc.List(context.Background(), ListFilters{Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "ORD-002" {
		t.Fatalf("expected single newest order, got %v", orders)
	}
}

func TestCreateAssignsSequenceIDAndPendingStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Create(ctx, CreateInput{
		UserID:   2,
		Items:    sampleItems(),
		Total:    decimal.NewFromInt(498),
		Subtotal: decimal.NewFromInt(498),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "ORD-003" {
		t.Fatalf("expected id ORD-003, got %s", created.ID)
	}
	if created.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.TrackingNumber != nil {
		t.Fatalf("expected nil tracking number, got %v", *created.TrackingNumber)
	}
	if created.PaymentMethod == nil || created.ShippingAddress == nil {
		t.Fatal("expected empty maps, got nil")
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, input := range []CreateInput{
		{Items: sampleItems()},
		{UserID: 1},
		{UserID: 1, Items: []models.OrderItem{}},
	} {
		_, err := svc.Create(ctx, input)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected VALIDATION_ERROR for %+v, got %v", input, err)
		}
	}
}

func TestUpdateSetsStatusTimestamps(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	fixed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	tracking := "TRK555"
	updated, err := svc.Update(ctx, UpdateInput{ID: "ORD-001", Status: "shipped", TrackingNumber: &tracking})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != enums.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}
	if updated.ShippedAt == nil || !updated.ShippedAt.Equal(fixed) {
		t.Fatalf("expected shippedAt %v, got %v", fixed, updated.ShippedAt)
	}
	if updated.TrackingNumber == nil || *updated.TrackingNumber != "TRK555" {
		t.Fatalf("expected tracking TRK555, got %v", updated.TrackingNumber)
	}

	updated, err = svc.Update(ctx, UpdateInput{ID: "ORD-001", Status: "delivered"})
	if err != nil {
		t.Fatalf("update delivered: %v", err)
	}
	if updated.DeliveredAt == nil {
		t.Fatal("expected deliveredAt set")
	}
	// Previous tracking number survives when none is provided.
	if updated.TrackingNumber == nil || *updated.TrackingNumber != "TRK555" {
		t.Fatalf("expected tracking preserved, got %v", updated.TrackingNumber)
	}
}

func TestUpdateAllowsAnyTransition(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// ORD-001 is delivered; moving it back to pending is allowed.
	updated, err := svc.Update(ctx, UpdateInput{ID: "ORD-001", Status: "pending"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending, got %s", updated.Status)
	}
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Update(ctx, UpdateInput{Status: "shipped"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for missing id, got %v", err)
	}

	_, err = svc.Update(ctx, UpdateInput{ID: "ORD-001", Status: "teleported"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for bad status, got %v", err)
	}

	_, err = svc.Update(ctx, UpdateInput{ID: "ORD-999", Status: "shipped"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
