// internal/services/admin_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/models"
)

type AdminService struct {
	db    *gorm.DB
	cache *DashboardCache
}

func NewAdminService(db *gorm.DB) *AdminService {
	s := &AdminService{db: db}
	s.cache = NewDashboardCache(s.loadSnapshot, DashboardTTL)
	return s
}

// GetDashboardStats serves the dashboard snapshot through the cache. Callers
// supply now explicitly so freshness is decided on their clock, not ours.
func (s *AdminService) GetDashboardStats(now time.Time, forceRefresh bool) (*DashboardSnapshot, error) {
	if forceRefresh {
		return s.cache.Refresh(now)
	}
	return s.cache.Get(now)
}

// InvalidateDashboard drops the cached snapshot. Called after admin mutations
// and on logout.
func (s *AdminService) InvalidateDashboard() {
	s.cache.Invalidate()
}

func (s *AdminService) loadSnapshot(now time.Time) (*DashboardSnapshot, error) {
	var products []models.Product
	if err := s.db.Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	var orders []models.Order
	if err := s.db.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return AggregateStats(products, orders, now)
}
