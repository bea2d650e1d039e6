// internal/services/filter_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/highgrip/storefront-backend/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func testCatalog() []models.Product {
	return []models.Product{
		{Name: "Crew Classic", Category: "Crew", Price: 299, AverageRating: 4.5, DiscountPercent: 10},
		{Name: "Ankle Runner", Category: "Ankle", Price: 199, AverageRating: 3.8},
		{Name: "No-Show Lite", Category: "No-Show", Price: 149, AverageRating: 4.2, Tag: "Sale"},
		{Name: "Thermal Hiker", Category: "Winter", Price: 499, AverageRating: 4.9},
		{Name: "Crew Sport", Category: "Crew", Price: 349, AverageRating: 4.0},
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFilterProductsEmptyCriteria(t *testing.T) {
	catalog := testCatalog()

	result := FilterProducts(catalog, FilterCriteria{})

	assert.Equal(t, names(catalog), names(result), "empty criteria must return everything in input order")
}

func TestFilterProductsSearch(t *testing.T) {
	catalog := testCatalog()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{Search: "crew"})
		assert.Equal(t, []string{"Crew Classic", "Crew Sport"}, names(result))
	})

	t.Run("matches category", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{Search: "winter"})
		assert.Equal(t, []string{"Thermal Hiker"}, names(result))
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{Search: "gloves"})
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestFilterProductsPriceBounds(t *testing.T) {
	catalog := testCatalog()

	t.Run("bounds are inclusive", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{
			MinPrice: floatPtr(199),
			MaxPrice: floatPtr(349),
		})
		assert.Equal(t, []string{"Crew Classic", "Ankle Runner", "Crew Sport"}, names(result))
	})

	t.Run("filters on listed price, not discounted", func(t *testing.T) {
		// Crew Classic lists at 299 with 10% off (269.10 effective); a min of
		// 299 must still include it.
		result := FilterProducts(catalog, FilterCriteria{MinPrice: floatPtr(299)})
		assert.Contains(t, names(result), "Crew Classic")
	})

	t.Run("min only", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{MinPrice: floatPtr(400)})
		assert.Equal(t, []string{"Thermal Hiker"}, names(result))
	})
}

func TestFilterProductsMinRating(t *testing.T) {
	catalog := testCatalog()

	result := FilterProducts(catalog, FilterCriteria{MinRating: 4})

	assert.Equal(t, []string{"Crew Classic", "No-Show Lite", "Thermal Hiker", "Crew Sport"}, names(result))
}

func TestFilterProductsDeals(t *testing.T) {
	catalog := testCatalog()

	t.Run("republic matches discounted or Sale-tagged products", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{Deals: []string{"republic"}})
		assert.Equal(t, []string{"Crew Classic", "No-Show Lite"}, names(result))
	})

	t.Run("unknown deal values narrow nothing", func(t *testing.T) {
		result := FilterProducts(catalog, FilterCriteria{Deals: []string{"clearance"}})
		assert.Len(t, result, len(catalog))
	})
}

func TestFilterProductsDeliveryFacetsMatchAll(t *testing.T) {
	catalog := testCatalog()

	result := FilterProducts(catalog, FilterCriteria{
		Delivery:      []string{"express"},
		PayOnDelivery: true,
	})

	assert.Len(t, result, len(catalog))
}

func TestFilterProductsConjunction(t *testing.T) {
	catalog := testCatalog()

	result := FilterProducts(catalog, FilterCriteria{
		Search:    "crew",
		MinPrice:  floatPtr(300),
		MinRating: 4,
	})

	assert.Equal(t, []string{"Crew Sport"}, names(result))
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	original := names(catalog)

	FilterProducts(catalog, FilterCriteria{MinRating: 5})

	assert.Equal(t, original, names(catalog))
}
