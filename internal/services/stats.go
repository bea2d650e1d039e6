// internal/services/stats.go
package services

import (
	"errors"
	"sort"
	"time"

	"github.com/highgrip/storefront-backend/internal/models"
)

// ErrInvalidInput marks a malformed collection handed to the aggregator. A nil
// collection usually means the store fetch failed upstream; reporting zero
// counts instead would mask that.
var ErrInvalidInput = errors.New("invalid input collection")

// RecentOrderLimit bounds the dashboard's recent-activity feed.
const RecentOrderLimit = 5

type DashboardSnapshot struct {
	ProductCount        int            `json:"product_count"`
	OrderCount          int            `json:"order_count"`
	ActiveDiscountCount int            `json:"active_discount_count"`
	CategoryCount       int            `json:"category_count"`
	RecentOrders        []models.Order `json:"recent_orders"`
	CreatedAt           time.Time      `json:"created_at"`
}

// AggregateStats reduces the product and order collections into one dashboard
// snapshot. It is a pure reduction: inputs are not mutated and no I/O happens
// here. The category count is derived from distinct category names observed
// across products.
func AggregateStats(products []models.Product, orders []models.Order, now time.Time) (*DashboardSnapshot, error) {
	if products == nil || orders == nil {
		return nil, ErrInvalidInput
	}

	snapshot := &DashboardSnapshot{
		ProductCount: len(products),
		OrderCount:   len(orders),
	}

	categories := make(map[string]struct{})
	for i := range products {
		if products[i].Category != "" {
			categories[products[i].Category] = struct{}{}
		}
		if IsDiscountActive(&products[i], now) {
			snapshot.ActiveDiscountCount++
		}
	}
	snapshot.CategoryCount = len(categories)

	snapshot.RecentOrders = recentOrders(orders, RecentOrderLimit)
	return snapshot, nil
}

// recentOrders returns the newest orders by creation time, ties broken by
// input position so repeated aggregation over the same data is deterministic.
func recentOrders(orders []models.Order, limit int) []models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
