package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/techstore-mx/techstore-backend/api/middleware"
	"github.com/techstore-mx/techstore-backend/api/responses"
	"github.com/techstore-mx/techstore-backend/api/validators"
	productsvc "github.com/techstore-mx/techstore-backend/internal/products"
	wishliststore "github.com/techstore-mx/techstore-backend/internal/wishlist"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

type toggleWishlistRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
}

type toggleWishlistResponse struct {
	Entries []wishliststore.Entry `json:"entries"`
	Added   bool                  `json:"added"`
}

// GetWishlist handles GET /api/wishlist for the caller's session.
func GetWishlist(store *wishliststore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.List(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, entries, len(entries), "Lista de deseos obtenida exitosamente")
	}
}

// ToggleWishlist handles POST /api/wishlist/toggle: present removes, absent
// adds a snapshot entry.
func ToggleWishlist(store *wishliststore.Store, products productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload toggleWishlistRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, added, err := store.Toggle(r.Context(), middleware.SessionIDFromContext(r.Context()), *product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := "Producto eliminado de la lista de deseos"
		if added {
			message = "Producto agregado a la lista de deseos"
		}
		responses.WriteSuccess(w, toggleWishlistResponse{Entries: entries, Added: added}, message)
	}
}

// RemoveWishlistItem handles DELETE /api/wishlist/{productId}.
func RemoveWishlistItem(store *wishliststore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "productId")
		productID, err := strconv.Atoi(raw)
		if err != nil || productID <= 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "ID del producto es requerido"))
			return
		}

		entries, err := store.Remove(r.Context(), middleware.SessionIDFromContext(r.Context()), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, entries, "Producto eliminado de la lista de deseos")
	}
}
