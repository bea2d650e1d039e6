// internal/services/pricing.go
package services

import (
	"math"
	"strings"
	"time"

	"github.com/highgrip/storefront-backend/internal/models"
)

// Discount window bounds arrive as loose date strings from the store. Any of
// these layouts is accepted; anything else leaves that side of the window open.
var discountDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDiscountBound returns the parsed bound, or ok=false when the field is
// absent, empty, or unparseable. Malformed dates are deliberately tolerated
// rather than surfaced as errors.
func parseDiscountBound(value *string) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range discountDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDiscountActive reports whether the product's discount applies at the given
// instant. A positive percentage with no parseable window is always active.
func IsDiscountActive(p *models.Product, now time.Time) bool {
	if p.DiscountPercent <= 0 {
		return false
	}

	if start, ok := parseDiscountBound(p.DiscountStart); ok && now.Before(start) {
		return false
	}
	if end, ok := parseDiscountBound(p.DiscountEnd); ok && now.After(end) {
		return false
	}
	return true
}

// EffectivePrice computes the price a customer pays at the given instant,
// rounded half-up to two decimals. Inactive discounts leave the base price
// untouched.
func EffectivePrice(p *models.Product, now time.Time) float64 {
	if !IsDiscountActive(p, now) {
		return p.Price
	}

	discounted := p.Price * (1 - p.DiscountPercent/100)
	return math.Floor(discounted*100+0.5) / 100
}
