package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/techstore-mx/techstore-backend/pkg/db/models"
	"github.com/techstore-mx/techstore-backend/pkg/enums"
)

func price(value int) decimal.Decimal {
	return decimal.NewFromInt(int64(value))
}

func fixtureCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Gaming Tower X", Description: "RGB gaming desktop", Price: price(899), Category: enums.ProductCategoryDesktop, Rating: 4.2, Specs: []string{"RTX 4060", "16GB RAM"}, Brand: "Acer", Stock: 5},
		{ID: 2, Name: "Creator Station", Description: "Workstation for editing", Price: price(1299), Category: enums.ProductCategoryDesktop, Rating: 4.8, Specs: []string{"RTX 4070", "32GB RAM"}, Brand: "Dell", Stock: 3, IsNew: true},
		{ID: 3, Name: "Compact Mini PC", Description: "Small form factor", Price: price(1699), Category: enums.ProductCategoryDesktop, Rating: 4.0, Specs: []string{"Ryzen 7", "16GB RAM"}, Brand: "HP", Stock: 0},
		{ID: 4, Name: "Pro Tower", Description: "Professional desktop", Price: price(2199), Category: enums.ProductCategoryDesktop, Rating: 4.5, Specs: []string{"RTX 4080", "64GB RAM"}, Brand: "Dell", Stock: 8},
		{ID: 5, Name: "Render Beast", Description: "Heavy rendering rig", Price: price(2899), Category: enums.ProductCategoryDesktop, Rating: 4.9, Specs: []string{"RTX 4090", "128GB RAM"}, Brand: "Alienware", Stock: 2},
		{ID: 6, Name: "Ultimate Rig", Description: "Flagship gaming machine", Price: price(3299), Category: enums.ProductCategoryDesktop, Rating: 4.7, Specs: []string{"RTX 4090", "64GB RAM"}, Brand: "Alienware", Stock: 1, IsNew: true},
	}
}

func defaultState(products []models.Product) FilterState {
	return DefaultFilters(ComputeStats(products, enums.ProductCategoryDesktop))
}

func resultIDs(products []models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got []models.Product, want ...int) {
	t.Helper()
	ids := resultIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, ids)
		}
	}
}

func TestApplyPriceRangeAscending(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.PriceRange = [2]decimal.Decimal{price(1000), price(2500)}
	state.SortKey = enums.SortKeyPriceLow

	got := Apply(products, enums.ProductCategoryDesktop, state, "")

	assertIDs(t, got, 2, 3, 4)
	for i := 1; i < len(got); i++ {
		if got[i].Price.LessThan(got[i-1].Price) {
			t.Fatalf("prices not ascending: %v", resultIDs(got))
		}
	}
}

func TestApplyPriceRangeIsInclusive(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.PriceRange = [2]decimal.Decimal{price(1299), price(2199)}
	state.SortKey = enums.SortKeyPriceLow

	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, ""), 2, 3, 4)
}

func TestApplyBrandFilter(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.Brands = []string{"Dell"}
	state.SortKey = enums.SortKeyPriceLow

	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, ""), 2, 4)
}

func TestApplySpecSubstringIsCaseInsensitive(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.Specs = []string{"rtx 4090"}
	state.SortKey = enums.SortKeyPriceLow

	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, ""), 5, 6)
}

func TestApplyMinRatingAndAvailability(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.MinRating = 4.5
	state.AvailabilityOnly = true
	state.SortKey = enums.SortKeyPriceLow

	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, ""), 2, 4, 5, 6)
}

func TestApplyAvailabilityExcludesOutOfStock(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.AvailabilityOnly = true
	state.SortKey = enums.SortKeyPriceLow

	got := Apply(products, enums.ProductCategoryDesktop, state, "")
	for _, product := range got {
		if product.Stock <= 0 {
			t.Fatalf("product %d has no stock", product.ID)
		}
	}
	assertIDs(t, got, 1, 2, 4, 5, 6)
}

func TestApplySearchMatchesNameDescriptionBrandSpecs(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.SortKey = enums.SortKeyPriceLow

	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, "mini"), 3)
	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, "rendering"), 5)
	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, "alienware"), 5, 6)
	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, "128gb"), 5)
	if got := Apply(products, enums.ProductCategoryDesktop, state, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", resultIDs(got))
	}
}

func TestApplySortPriceHigh(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.SortKey = enums.SortKeyPriceHigh

	got := Apply(products, enums.ProductCategoryDesktop, state, "")
	for i := 1; i < len(got); i++ {
		if got[i].Price.GreaterThan(got[i-1].Price) {
			t.Fatalf("prices not descending: %v", resultIDs(got))
		}
	}
}

func TestApplySortRatingDescending(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.SortKey = enums.SortKeyRating

	got := Apply(products, enums.ProductCategoryDesktop, state, "")
	for i := 1; i < len(got); i++ {
		if got[i].Rating > got[i-1].Rating {
			t.Fatalf("ratings not descending: %v", resultIDs(got))
		}
	}
}

func TestApplySortNewestKeepsStableOrderWithinGroups(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.SortKey = enums.SortKeyNewest

	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, ""), 2, 6, 1, 3, 4, 5)
}

func TestApplySortName(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.SortKey = enums.SortKeyName

	got := Apply(products, enums.ProductCategoryDesktop, state, "")
	for i := 1; i < len(got); i++ {
		if got[i].Name < got[i-1].Name {
			t.Fatalf("names not ascending: %v", resultIDs(got))
		}
	}
}

func TestApplySortRelevanceNewFirstThenRating(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)

	// New arrivals (2: 4.8, 6: 4.7) lead, the rest follow by rating.
	assertIDs(t, Apply(products, enums.ProductCategoryDesktop, state, ""), 2, 6, 5, 4, 1, 3)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := fixtureCatalog()
	state := defaultState(products)
	state.SortKey = enums.SortKeyPriceHigh

	Apply(products, enums.ProductCategoryDesktop, state, "")

	for i, want := range []int{1, 2, 3, 4, 5, 6} {
		if products[i].ID != want {
			t.Fatalf("input slice reordered: %v", resultIDs(products))
		}
	}
}

func TestApplyCategoryMismatchExcluded(t *testing.T) {
	products := append(fixtureCatalog(), models.Product{
		ID: 99, Name: "Phone", Price: price(500), Category: enums.ProductCategoryMobile, Stock: 1,
	})
	state := defaultState(products)
	state.PriceRange = [2]decimal.Decimal{price(0), price(9999)}

	got := Apply(products, enums.ProductCategoryDesktop, state, "")
	for _, product := range got {
		if product.Category != enums.ProductCategoryDesktop {
			t.Fatalf("unexpected category %s in result", product.Category)
		}
	}
}
