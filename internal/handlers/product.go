// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/highgrip/storefront-backend/internal/models"
	"github.com/highgrip/storefront-backend/internal/services"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	adminService   *services.AdminService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, adminService *services.AdminService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		adminService:   adminService,
		storageService: storageService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	criteria := parseFilterCriteria(c)

	products, err := h.productService.ListProducts(criteria)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	views := services.BuildProductViews(products, time.Now())
	utils.SuccessResponseWithMeta(c, views, gin.H{
		"count": len(views),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	view := services.BuildProductViews([]models.Product{*product}, time.Now())[0]

	utils.SuccessResponse(c, gin.H{
		"product": view,
	})
}

// POST /products (admin)
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// Catalog changed under the dashboard's feet
	h.adminService.InvalidateDashboard()

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// PUT /products/:id (admin)
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.adminService.InvalidateDashboard()

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /products/:id (admin)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.adminService.InvalidateDashboard()

	utils.SuccessResponse(c, gin.H{
		"message": "Product deleted successfully",
	})
}

// POST /products/upload-image (admin)
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image file provided", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadProductImage(file, header)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"upload": result,
	})
}

func parseFilterCriteria(c *gin.Context) services.FilterCriteria {
	criteria := services.FilterCriteria{
		Search: c.Query("search"),
	}

	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			criteria.MinPrice = &minPrice
		}
	}

	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			criteria.MaxPrice = &maxPrice
		}
	}

	if minRatingStr := c.Query("min_rating"); minRatingStr != "" {
		if minRating, err := strconv.ParseFloat(minRatingStr, 64); err == nil {
			criteria.MinRating = minRating
		}
	}

	if deals := c.Query("deals"); deals != "" {
		criteria.Deals = strings.Split(deals, ",")
	}

	if delivery := c.Query("delivery"); delivery != "" {
		criteria.Delivery = strings.Split(delivery, ",")
	}

	if podStr := c.Query("pay_on_delivery"); podStr != "" {
		if pod, err := strconv.ParseBool(podStr); err == nil {
			criteria.PayOnDelivery = pod
		}
	}

	return criteria
}
