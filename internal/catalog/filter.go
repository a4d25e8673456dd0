package catalog

import (
	"sort"
	"strings"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// Apply returns the ordered subset of products matching the category, filter
// state and search term. It is a pure function: the input slice is never
// mutated and ordering is stable for equal keys.
func Apply(products []models.Product, category enums.ProductCategory, state FilterState, searchTerm string) []models.Product {
	matched := make([]models.Product, 0, len(products))
	for _, product := range products {
		if matches(product, category, state, searchTerm) {
			matched = append(matched, product)
		}
	}
	sortProducts(matched, state.SortKey)
	return matched
}

func matches(product models.Product, category enums.ProductCategory, state FilterState, searchTerm string) bool {
	if category != "" && product.Category != category {
		return false
	}
	if product.Price.LessThan(state.PriceRange[0]) || product.Price.GreaterThan(state.PriceRange[1]) {
		return false
	}
	if len(state.Brands) > 0 && !containsFold(state.Brands, product.Brand) {
		return false
	}
	if len(state.Specs) > 0 && !anySpecMatches(state.Specs, product.Specs) {
		return false
	}
	if state.MinRating > 0 && product.Rating < state.MinRating {
		return false
	}
	if state.AvailabilityOnly && product.Stock <= 0 {
		return false
	}
	if searchTerm != "" && !matchesSearch(product, searchTerm) {
		return false
	}
	return true
}

func containsFold(values []string, target string) bool {
	for _, value := range values {
		if strings.EqualFold(value, target) {
			return true
		}
	}
	return false
}

func anySpecMatches(selected, productSpecs []string) bool {
	for _, want := range selected {
		needle := strings.ToLower(want)
		for _, spec := range productSpecs {
			if strings.Contains(strings.ToLower(spec), needle) {
				return true
			}
		}
	}
	return false
}

func matchesSearch(product models.Product, searchTerm string) bool {
	needle := strings.ToLower(strings.TrimSpace(searchTerm))
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(product.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Description), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Brand), needle) {
		return true
	}
	for _, spec := range product.Specs {
		if strings.Contains(strings.ToLower(spec), needle) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, key enums.SortKey) {
	switch key {
	case enums.SortKeyPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortKeyPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case enums.SortKeyRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case enums.SortKeyNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case enums.SortKeyName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	default:
		// relevance: new arrivals first, then by rating.
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].IsNew != products[j].IsNew {
				return products[i].IsNew
			}
			return products[i].Rating > products[j].Rating
		})
	}
}
