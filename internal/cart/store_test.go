package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/internal/seed"
	"github.com/techstore-mx/techstore-backend/pkg/config"
	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/kv"
)

const testSession = "sess-1"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(kv.NewMemory(), config.CartConfig{FreeShippingThreshold: 1000, ShippingFee: 99}, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func product(id int) models.Product {
	for _, candidate := range seed.Products(time.Now()) {
		if candidate.ID == id {
			return candidate
		}
	}
	panic("unknown fixture product")
}

func TestAddInsertsAndIncrements(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	lines, err := store.Add(ctx, testSession, AddInput{Product: product(5)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected one line qty 1, got %v", lines)
	}

	lines, err = store.Add(ctx, testSession, AddInput{Product: product(5), Quantity: 2})
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("expected one line qty 3, got %v", lines)
	}
}

func TestAddSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item := product(5)
	if _, err := store.Add(ctx, testSession, AddInput{Product: item}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A later catalog price change must not touch the stored line.
	item.Price = decimal.NewFromInt(999)

	lines, err := store.List(ctx, testSession)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !lines[0].Price.Equal(decimal.NewFromInt(249)) {
		t.Fatalf("expected snapshot price 249, got %s", lines[0].Price)
	}
}

func TestUpdateQuantitySetsExactAndRemovesAtZero(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Add(ctx, testSession, AddInput{Product: product(5), Quantity: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines, err := store.UpdateQuantity(ctx, testSession, 5, 7)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if lines[0].Quantity != 7 {
		t.Fatalf("expected qty 7, got %d", lines[0].Quantity)
	}

	lines, err = store.UpdateQuantity(ctx, testSession, 5, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %v", lines)
	}
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Add(ctx, testSession, AddInput{Product: product(5)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := store.Remove(ctx, testSession, 999)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected cart untouched, got %v", lines)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Add(ctx, testSession, AddInput{Product: product(5)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Clear(ctx, testSession); err != nil {
		t.Fatalf("clear: %v", err)
	}
	lines, err := store.List(ctx, testSession)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %v", lines)
	}
}

func TestSummarizeTotalsAndShipping(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// 2 x 249 = 498, below the free-shipping threshold.
	if _, err := store.Add(ctx, testSession, AddInput{Product: product(5), Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, err := store.Summarize(ctx, testSession)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.TotalItems != 2 {
		t.Fatalf("expected 2 items, got %d", summary.TotalItems)
	}
	if !summary.TotalPrice.Equal(decimal.NewFromInt(498)) {
		t.Fatalf("expected total 498, got %s", summary.TotalPrice)
	}
	if !summary.ShippingCost.Equal(decimal.NewFromInt(99)) {
		t.Fatalf("expected shipping 99, got %s", summary.ShippingCost)
	}
	if !summary.FinalTotal.Equal(decimal.NewFromInt(597)) {
		t.Fatalf("expected final 597, got %s", summary.FinalTotal)
	}

	// Crossing the threshold ships free.
	if _, err := store.Add(ctx, testSession, AddInput{Product: product(4)}); err != nil {
		t.Fatalf("add iphone: %v", err)
	}
	summary, err = store.Summarize(ctx, testSession)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !summary.ShippingCost.Equal(decimal.Zero) {
		t.Fatalf("expected free shipping, got %s", summary.ShippingCost)
	}
	if !summary.FinalTotal.Equal(summary.TotalPrice) {
		t.Fatalf("expected final == total, got %s vs %s", summary.FinalTotal, summary.TotalPrice)
	}
}

func TestIsInCartAndItemQuantity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Add(ctx, testSession, AddInput{Product: product(5), Quantity: 4}); err != nil {
		t.Fatalf("add: %v", err)
	}

	in, err := store.IsInCart(ctx, testSession, 5)
	if err != nil || !in {
		t.Fatalf("expected product 5 in cart, got %v %v", in, err)
	}
	qty, err := store.ItemQuantity(ctx, testSession, 5)
	if err != nil || qty != 4 {
		t.Fatalf("expected qty 4, got %d %v", qty, err)
	}
	qty, err = store.ItemQuantity(ctx, testSession, 99)
	if err != nil || qty != 0 {
		t.Fatalf("expected qty 0 for absent product, got %d %v", qty, err)
	}
}

func TestCorruptSavedStateYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemory()
	store, err := NewStore(backend, config.CartConfig{FreeShippingThreshold: 1000, ShippingFee: 99}, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := backend.Set(ctx, kv.CartKey(testSession), "{not json", 0); err != nil {
		t.Fatalf("seed corrupt state: %v", err)
	}

	lines, err := store.List(ctx, testSession)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %v", lines)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Add(ctx, "sess-a", AddInput{Product: product(5)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := store.List(ctx, "sess-b")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected other session empty, got %v", lines)
	}
}
