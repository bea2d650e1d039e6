// internal/handlers/order.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highgrip/storefront-backend/internal/models"
	"github.com/highgrip/storefront-backend/internal/services"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
	adminService *services.AdminService
}

func NewOrderHandler(orderService *services.OrderService, adminService *services.AdminService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		adminService: adminService,
	}
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	response, err := h.orderService.CreateOrder(&req, time.Now())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.adminService.InvalidateDashboard()

	utils.CreatedResponse(c, response)
}

// GET /admin/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.adminService.InvalidateDashboard()

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
