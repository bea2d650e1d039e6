// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/highgrip/storefront-backend/internal/services"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type AuthHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
}

func NewAuthHandler(authService *services.AuthService, adminService *services.AdminService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		utils.ConflictResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, response)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		utils.UnauthorizedResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, response)
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless JWTs have nothing to revoke server-side; dropping the cached
	// dashboard is the only session-scoped state an admin leaves behind.
	if utils.IsAdminFromContext(c) {
		h.adminService.InvalidateDashboard()
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Logged out successfully",
	})
}
