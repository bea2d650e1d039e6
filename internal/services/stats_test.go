// internal/services/stats_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highgrip/storefront-backend/internal/models"
)

func orderAt(reference string, createdAt time.Time) models.Order {
	return models.Order{
		BaseModel: models.BaseModel{CreatedAt: createdAt},
		Reference: reference,
	}
}

func TestAggregateStatsNilInputs(t *testing.T) {
	now := time.Now()

	_, err := AggregateStats(nil, []models.Order{}, now)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = AggregateStats([]models.Product{}, nil, now)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAggregateStatsEmptyInputs(t *testing.T) {
	snapshot, err := AggregateStats([]models.Product{}, []models.Order{}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot.ProductCount)
	assert.Equal(t, 0, snapshot.OrderCount)
	assert.Equal(t, 0, snapshot.ActiveDiscountCount)
	assert.Equal(t, 0, snapshot.CategoryCount)
	assert.Empty(t, snapshot.RecentOrders)
}

func TestAggregateStatsCounts(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	products := []models.Product{
		{Name: "Crew Classic", Category: "Crew", Price: 299, DiscountPercent: 10},
		{Name: "Crew Sport", Category: "Crew", Price: 349},
		{Name: "Ankle Runner", Category: "Ankle", Price: 199, DiscountPercent: 20, DiscountEnd: strPtr("2025-06-01")},
		{Name: "Mystery Pair", Category: "", Price: 99},
	}
	orders := []models.Order{
		orderAt("HG-0000000001", now.Add(-time.Hour)),
		orderAt("HG-0000000002", now.Add(-2*time.Hour)),
	}

	snapshot, err := AggregateStats(products, orders, now)
	require.NoError(t, err)

	assert.Equal(t, 4, snapshot.ProductCount)
	assert.Equal(t, 2, snapshot.OrderCount)
	// Ankle Runner's discount expired two weeks ago.
	assert.Equal(t, 1, snapshot.ActiveDiscountCount)
	// Empty category names are not counted.
	assert.Equal(t, 2, snapshot.CategoryCount)
}

func TestAggregateStatsRecentOrders(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		orderAt("HG-0000000001", now.Add(-3*time.Hour)),
		orderAt("HG-0000000002", now.Add(-1*time.Hour)),
		orderAt("HG-0000000003", now.Add(-6*time.Hour)),
		orderAt("HG-0000000004", now.Add(-2*time.Hour)),
		orderAt("HG-0000000005", now.Add(-5*time.Hour)),
		orderAt("HG-0000000006", now.Add(-4*time.Hour)),
	}

	snapshot, err := AggregateStats([]models.Product{}, orders, now)
	require.NoError(t, err)

	require.Len(t, snapshot.RecentOrders, RecentOrderLimit)

	refs := make([]string, len(snapshot.RecentOrders))
	for i, o := range snapshot.RecentOrders {
		refs[i] = o.Reference
	}
	assert.Equal(t, []string{
		"HG-0000000002",
		"HG-0000000004",
		"HG-0000000001",
		"HG-0000000006",
		"HG-0000000005",
	}, refs)
}

func TestAggregateStatsRecentOrderTies(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sameInstant := now.Add(-time.Hour)

	orders := []models.Order{
		orderAt("HG-0000000001", sameInstant),
		orderAt("HG-0000000002", sameInstant),
		orderAt("HG-0000000003", sameInstant),
	}

	snapshot, err := AggregateStats([]models.Product{}, orders, now)
	require.NoError(t, err)

	// Equal timestamps keep input order.
	refs := make([]string, len(snapshot.RecentOrders))
	for i, o := range snapshot.RecentOrders {
		refs[i] = o.Reference
	}
	assert.Equal(t, []string{"HG-0000000001", "HG-0000000002", "HG-0000000003"}, refs)
}

func TestAggregateStatsDoesNotMutateOrders(t *testing.T) {
	now := time.Now()

	orders := []models.Order{
		orderAt("HG-0000000001", now.Add(-2*time.Hour)),
		orderAt("HG-0000000002", now.Add(-1*time.Hour)),
	}

	_, err := AggregateStats([]models.Product{}, orders, now)
	require.NoError(t, err)

	assert.Equal(t, "HG-0000000001", orders[0].Reference)
	assert.Equal(t, "HG-0000000002", orders[1].Reference)
}
