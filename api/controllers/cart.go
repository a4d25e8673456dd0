package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techstore-mx/techstore-backend/api/middleware"
	"github.com/techstore-mx/techstore-backend/api/responses"
	"github.com/techstore-mx/techstore-backend/api/validators"
	cartstore "github.com/techstore-mx/techstore-backend/internal/cart"
	productsvc "github.com/techstore-mx/techstore-backend/internal/products"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/cart for the caller's session.
func GetCart(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := store.List(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, lines, len(lines), "Carrito obtenido exitosamente")
	}
}

// AddCartItem handles POST /api/cart/items. The price snapshot comes from the
// catalog at call time.
func AddCartItem(store *cartstore.Store, products productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := store.Add(r.Context(), middleware.SessionIDFromContext(r.Context()), cartstore.AddInput{
			Product:  *product,
			Quantity: payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, lines, "Producto agregado al carrito")
	}
}

// UpdateCartItem handles PUT /api/cart/items/{productId}. A quantity of zero
// or below removes the line.
func UpdateCartItem(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := cartProductIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := store.UpdateQuantity(r.Context(), middleware.SessionIDFromContext(r.Context()), productID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, lines, "Carrito actualizado exitosamente")
	}
}

// RemoveCartItem handles DELETE /api/cart/items/{productId}.
func RemoveCartItem(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := cartProductIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines, err := store.Remove(r.Context(), middleware.SessionIDFromContext(r.Context()), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, lines, "Producto eliminado del carrito")
	}
}

// ClearCart handles DELETE /api/cart.
func ClearCart(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, []cartstore.Line{}, "Carrito vaciado exitosamente")
	}
}

// CartSummary handles GET /api/cart/summary: item count, totals and shipping.
func CartSummary(store *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := store.Summarize(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary, "Resumen del carrito obtenido exitosamente")
	}
}

func cartProductIDFromPath(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "ID del producto es requerido")
	}
	return id, nil
}
