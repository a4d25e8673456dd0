package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

// ComputeStats derives the filter panel data for a category: distinct sorted
// brands and specs plus the price bounds. An empty category spans the whole
// catalog.
func ComputeStats(products []models.Product, category enums.ProductCategory) Stats {
	brands := map[string]struct{}{}
	specs := map[string]struct{}{}

	stats := Stats{Brands: []string{}, Specs: []string{}}
	first := true
	for _, product := range products {
		if category != "" && product.Category != category {
			continue
		}
		stats.Total++
		if product.Brand != "" {
			brands[product.Brand] = struct{}{}
		}
		for _, spec := range product.Specs {
			if spec != "" {
				specs[spec] = struct{}{}
			}
		}
		if first {
			stats.MinPrice = product.Price
			stats.MaxPrice = product.Price
			first = false
			continue
		}
		if product.Price.LessThan(stats.MinPrice) {
			stats.MinPrice = product.Price
		}
		if product.Price.GreaterThan(stats.MaxPrice) {
			stats.MaxPrice = product.Price
		}
	}

	if first {
		stats.MinPrice = decimal.Zero
		stats.MaxPrice = decimal.Zero
	}

	for brand := range brands {
		stats.Brands = append(stats.Brands, brand)
	}
	for spec := range specs {
		stats.Specs = append(stats.Specs, spec)
	}
	sort.Strings(stats.Brands)
	sort.Strings(stats.Specs)
	return stats
}
