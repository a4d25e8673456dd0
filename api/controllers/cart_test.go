package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/techstore-mx/techstore-backend/api/middleware"
	cartstore "github.com/techstore-mx/techstore-backend/internal/cart"
	"github.com/techstore-mx/techstore-backend/pkg/config"
	"github.com/techstore-mx/techstore-backend/pkg/kv"
)

func newCartStore(t *testing.T) *cartstore.Store {
	t.Helper()
	store, err := cartstore.NewStore(kv.NewMemory(), config.CartConfig{FreeShippingThreshold: 1000, ShippingFee: 99}, testLogger())
	if err != nil {
		t.Fatalf("cart store: %v", err)
	}
	return store
}

func withSession(r *http.Request, sessionID string) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), sessionID))
}

func TestAddCartItem(t *testing.T) {
	logg := testLogger()
	svc := newProductsService(t)
	store := newCartStore(t)

	t.Run("adds a line", func(t *testing.T) {
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":1,"quantity":2}`)), "s1")
		rec := httptest.NewRecorder()
		AddCartItem(store, svc, logg).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
		}

		var payload struct {
			Data []cartstore.Line `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(payload.Data) != 1 || payload.Data[0].Quantity != 2 {
			t.Fatalf("unexpected cart lines %+v", payload.Data)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":404,"quantity":1}`)), "s1")
		rec := httptest.NewRecorder()
		AddCartItem(store, svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"quantity":1}`)), "s1")
		rec := httptest.NewRecorder()
		AddCartItem(store, svc, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 got %d", rec.Code)
		}
	})
}

func TestUpdateCartItemRemovesOnZero(t *testing.T) {
	logg := testLogger()
	svc := newProductsService(t)
	store := newCartStore(t)

	add := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`)), "s2")
	rec := httptest.NewRecorder()
	AddCartItem(store, svc, logg).ServeHTTP(rec, add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}

	update := withSession(withURLParam(httptest.NewRequest(http.MethodPut, "/api/cart/items/1", strings.NewReader(`{"quantity":0}`)), "productId", "1"), "s2")
	rec = httptest.NewRecorder()
	UpdateCartItem(store, logg).ServeHTTP(rec, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data []cartstore.Line `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(payload.Data) != 0 {
		t.Fatalf("expected empty cart after zero-quantity update got %+v", payload.Data)
	}
}

func TestCartSummaryShipping(t *testing.T) {
	logg := testLogger()
	svc := newProductsService(t)
	store := newCartStore(t)

	// product 5 is the only one under the free shipping threshold
	add := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":5,"quantity":1}`)), "s3")
	rec := httptest.NewRecorder()
	AddCartItem(store, svc, logg).ServeHTTP(rec, add)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}

	summary := withSession(httptest.NewRequest(http.MethodGet, "/api/cart/summary", nil), "s3")
	rec = httptest.NewRecorder()
	CartSummary(store, logg).ServeHTTP(rec, summary)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var payload struct {
		Data cartstore.Summary `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !payload.Data.ShippingCost.IsPositive() {
		t.Fatalf("expected shipping fee below threshold, got %s", payload.Data.ShippingCost)
	}
	if !payload.Data.FinalTotal.Equal(payload.Data.TotalPrice.Add(payload.Data.ShippingCost)) {
		t.Fatalf("final total mismatch: %+v", payload.Data)
	}
}

func TestClearCart(t *testing.T) {
	logg := testLogger()
	svc := newProductsService(t)
	store := newCartStore(t)

	add := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":2,"quantity":1}`)), "s4")
	rec := httptest.NewRecorder()
	AddCartItem(store, svc, logg).ServeHTTP(rec, add)

	clear := withSession(httptest.NewRequest(http.MethodDelete, "/api/cart", nil), "s4")
	rec = httptest.NewRecorder()
	ClearCart(store, logg).ServeHTTP(rec, clear)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	get := withSession(httptest.NewRequest(http.MethodGet, "/api/cart", nil), "s4")
	rec = httptest.NewRecorder()
	GetCart(store, logg).ServeHTTP(rec, get)
	envelope := decodeBody(t, rec)
	if envelope.Total == nil || *envelope.Total != 0 {
		t.Fatalf("expected empty cart got %v", envelope.Total)
	}
}
