package controllers

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	categorysvc "github.com/techstore-mx/techstore-backend/internal/categories"
	ordersvc "github.com/techstore-mx/techstore-backend/internal/orders"
	productsvc "github.com/techstore-mx/techstore-backend/internal/products"
	"github.com/techstore-mx/techstore-backend/internal/seed"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

var seedTime = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func newProductsService(t *testing.T) productsvc.Service {
	t.Helper()
	svc, err := productsvc.NewService(productsvc.NewMemoryRepository(seed.Products(seedTime)))
	if err != nil {
		t.Fatalf("products service: %v", err)
	}
	return svc
}

func newCategoriesService(t *testing.T) categorysvc.Service {
	t.Helper()
	svc, err := categorysvc.NewService(categorysvc.NewMemoryRepository(seed.Categories(seedTime)))
	if err != nil {
		t.Fatalf("categories service: %v", err)
	}
	return svc
}

func newOrdersService(t *testing.T) ordersvc.Service {
	t.Helper()
	svc, err := ordersvc.NewService(ordersvc.NewMemoryRepository(seed.Orders()))
	if err != nil {
		t.Fatalf("orders service: %v", err)
	}
	return svc
}

// withURLParam plants a chi route parameter so handlers under test can read it.
func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
