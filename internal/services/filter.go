// internal/services/filter.go
package services

import (
	"strings"

	"github.com/highgrip/storefront-backend/internal/models"
)

// FilterCriteria is built per request from query parameters and discarded
// afterwards. Zero-valued criteria match everything.
type FilterCriteria struct {
	Search        string   `json:"search,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	MinRating     float64  `json:"min_rating,omitempty"`
	Deals         []string `json:"deals,omitempty"`
	Delivery      []string `json:"delivery,omitempty"`
	PayOnDelivery bool     `json:"pay_on_delivery,omitempty"`
}

const dealRepublic = "republic"

// FilterProducts applies the criteria as a conjunction over the product list.
// Predicates run in a fixed order (search, price, rating, deal, delivery,
// pay-on-delivery) and the relative order of the input is preserved.
func FilterProducts(products []models.Product, criteria FilterCriteria) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(&p, criteria.Search) {
			continue
		}
		if !matchesPrice(&p, criteria.MinPrice, criteria.MaxPrice) {
			continue
		}
		if !matchesRating(&p, criteria.MinRating) {
			continue
		}
		if !matchesDeals(&p, criteria.Deals) {
			continue
		}
		if !matchesDelivery(&p, criteria.Delivery) {
			continue
		}
		if !matchesPayOnDelivery(&p, criteria.PayOnDelivery) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesSearch(p *models.Product, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// Price bounds are inclusive and compare the listed price, not the discounted
// one. The storefront has always filtered on listed price while displaying
// effective prices on cards; changing this would break parity with the UI.
func matchesPrice(p *models.Product, min, max *float64) bool {
	if min != nil && p.Price < *min {
		return false
	}
	if max != nil && p.Price > *max {
		return false
	}
	return true
}

func matchesRating(p *models.Product, minRating float64) bool {
	if minRating <= 0 {
		return true
	}
	return p.AverageRating >= minRating
}

// The "republic" deal facet matches any discounted product or anything tagged
// "Sale" (exact match), regardless of whether the discount window is open.
func matchesDeals(p *models.Product, deals []string) bool {
	for _, deal := range deals {
		if deal != dealRepublic {
			continue
		}
		if p.DiscountPercent > 0 || p.Tag == "Sale" {
			continue
		}
		return false
	}
	return true
}

// Every product in the catalog ships within two days, so delivery facets
// narrow nothing today. Kept in the chain so the facet stays addressable.
func matchesDelivery(p *models.Product, delivery []string) bool {
	return true
}

// All catalog items are eligible for pay on delivery.
func matchesPayOnDelivery(p *models.Product, payOnDelivery bool) bool {
	return true
}
