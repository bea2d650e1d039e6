// internal/handlers/admin.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/highgrip/storefront-backend/internal/services"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /admin/dashboard/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "true"

	stats, err := h.adminService.GetDashboardStats(time.Now(), forceRefresh)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// POST /admin/dashboard/invalidate
func (h *AdminHandler) InvalidateDashboard(c *gin.Context) {
	h.adminService.InvalidateDashboard()

	utils.SuccessResponse(c, gin.H{
		"message": "Dashboard cache invalidated",
	})
}
