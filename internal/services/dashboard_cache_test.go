// internal/services/dashboard_cache_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *int) SnapshotLoader {
	return func(now time.Time) (*DashboardSnapshot, error) {
		*calls++
		return &DashboardSnapshot{ProductCount: *calls}, nil
	}
}

func TestDashboardCacheGetServesFreshEntry(t *testing.T) {
	calls := 0
	cache := NewDashboardCache(countingLoader(&calls), 5*time.Minute)

	t0 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	first, err := cache.Get(t0)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, t0, first.CreatedAt)

	// Second read inside the TTL serves the same snapshot without loading.
	second, err := cache.Get(t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
}

func TestDashboardCacheGetReloadsAfterExpiry(t *testing.T) {
	calls := 0
	cache := NewDashboardCache(countingLoader(&calls), 5*time.Minute)

	t0 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	first, err := cache.Get(t0)
	require.NoError(t, err)

	// A read exactly at the TTL boundary is already stale.
	second, err := cache.Get(t0.Add(5 * time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))
}

func TestDashboardCacheRefreshBypassesFreshEntry(t *testing.T) {
	calls := 0
	cache := NewDashboardCache(countingLoader(&calls), 5*time.Minute)

	t0 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := cache.Get(t0)
	require.NoError(t, err)

	refreshed, err := cache.Refresh(t0.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, refreshed.ProductCount)

	// The refreshed snapshot now occupies the slot.
	got, err := cache.Get(t0.Add(2 * time.Second))
	require.NoError(t, err)
	assert.Same(t, refreshed, got)
}

func TestDashboardCacheInvalidate(t *testing.T) {
	calls := 0
	cache := NewDashboardCache(countingLoader(&calls), 5*time.Minute)

	t0 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := cache.Get(t0)
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.Get(t0.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDashboardCacheLoaderError(t *testing.T) {
	loadErr := errors.New("store unavailable")
	cache := NewDashboardCache(func(now time.Time) (*DashboardSnapshot, error) {
		return nil, loadErr
	}, 5*time.Minute)

	_, err := cache.Get(time.Now())
	assert.ErrorIs(t, err, loadErr)
}

func TestDashboardCacheDefaultTTL(t *testing.T) {
	calls := 0
	cache := NewDashboardCache(countingLoader(&calls), 0)

	t0 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	_, err := cache.Get(t0)
	require.NoError(t, err)

	// Still fresh just under the default five minutes.
	_, err = cache.Get(t0.Add(DashboardTTL - time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = cache.Get(t0.Add(DashboardTTL))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
