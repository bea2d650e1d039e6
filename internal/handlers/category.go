// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/highgrip/storefront-backend/internal/services"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	adminService    *services.AdminService
}

func NewCategoryHandler(categoryService *services.CategoryService, adminService *services.AdminService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		adminService:    adminService,
	}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

// POST /categories (admin)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		utils.ConflictResponse(c, err.Error())
		return
	}

	h.adminService.InvalidateDashboard()

	utils.CreatedResponse(c, gin.H{
		"category": category,
	})
}
