package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/api/responses"
	"github.com/techstore-mx/techstore-backend/api/validators"
	"github.com/techstore-mx/techstore-backend/internal/catalog"
	productsvc "github.com/techstore-mx/techstore-backend/internal/products"
	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
	pkgerrors "github.com/techstore-mx/techstore-backend/pkg/errors"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

type filterCatalogRequest struct {
	Category string               `json:"category"`
	Filters  *catalog.FilterState `json:"filters"`
	Search   string               `json:"search"`
}

type filterCatalogResponse struct {
	Products      []models.Product    `json:"products"`
	Stats         catalog.Stats       `json:"stats"`
	Filters       catalog.FilterState `json:"filters"`
	ActiveFilters int                 `json:"activeFilters"`
}

// FilterCatalog handles POST /api/catalog/filter: the filtered, ordered view
// of a category plus the stats the filter panel renders.
func FilterCatalog(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload filterCatalogRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := parseOptionalCategory(payload.Category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		all, err := svc.List(r.Context(), productsvc.ListFilters{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats := catalog.ComputeStats(all, category)
		state := catalog.DefaultFilters(stats)
		if payload.Filters != nil {
			state = *payload.Filters
			if state.PriceRange[0].IsZero() && state.PriceRange[1].IsZero() {
				state.PriceRange = [2]decimal.Decimal{stats.MinPrice, stats.MaxPrice}
			}
			if !state.SortKey.IsValid() {
				state.SortKey = enums.SortKeyRelevance
			}
		}

		filtered := catalog.Apply(all, category, state, payload.Search)

		responses.WriteList(w, filterCatalogResponse{
			Products:      filtered,
			Stats:         stats,
			Filters:       state,
			ActiveFilters: catalog.ActiveFilterCount(state, stats, payload.Search),
		}, len(filtered), "Productos filtrados exitosamente")
	}
}

// CatalogStats handles GET /api/catalog/stats?category=.
func CatalogStats(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := parseOptionalCategory(r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		all, err := svc.List(r.Context(), productsvc.ListFilters{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, catalog.ComputeStats(all, category), "Estadísticas obtenidas exitosamente")
	}
}

func parseOptionalCategory(raw string) (enums.ProductCategory, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return "", nil
	}
	category, err := enums.ParseProductCategory(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	return category, nil
}
