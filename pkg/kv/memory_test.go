package kv

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, "k", `{"a":1}`, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != `{"a":1}` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	current := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := store.Get(ctx, "k"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestKeyHelpers(t *testing.T) {
	if got := CartKey("abc"); got != "techstore:cart:abc" {
		t.Fatalf("unexpected cart key %q", got)
	}
	if got := WishlistKey("abc"); got != "techstore:wishlist:abc" {
		t.Fatalf("unexpected wishlist key %q", got)
	}
	if got := SessionKey("tok"); got != "techstore:session:tok" {
		t.Fatalf("unexpected session key %q", got)
	}
	if got := Key("cart", ""); got != "techstore:cart" {
		t.Fatalf("expected empty parts skipped, got %q", got)
	}
}
