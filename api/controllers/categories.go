package controllers

import (
	"net/http"

	"github.com/techstore-mx/techstore-backend/api/responses"
	"github.com/techstore-mx/techstore-backend/api/validators"
	categorysvc "github.com/techstore-mx/techstore-backend/internal/categories"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

// ListCategories handles GET /api/categories with the featured query filter.
func ListCategories(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context(), validators.ParseQueryBool(r, "featured"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteList(w, categories, len(categories), "Categorías obtenidas exitosamente")
	}
}

// CreateCategory handles POST /api/categories.
func CreateCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload categorysvc.CreateInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, category, "Categoría creada exitosamente")
	}
}
