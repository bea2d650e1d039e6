// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/models"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=255"`
	Category        string   `json:"category" validate:"required"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Description     string   `json:"description,omitempty"`
	Image           string   `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	DiscountPercent float64  `json:"discount_percent,omitempty" validate:"min=0,max=100"`
	DiscountStart   *string  `json:"discount_start,omitempty"`
	DiscountEnd     *string  `json:"discount_end,omitempty"`
	Tag             string   `json:"tag,omitempty"`
	Features        []string `json:"features,omitempty"`
}

type UpdateProductRequest struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Category        string   `json:"category,omitempty"`
	Price           float64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description     string   `json:"description,omitempty"`
	Image           string   `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty" validate:"omitempty,min=0,max=100"`
	DiscountStart   *string  `json:"discount_start,omitempty"`
	DiscountEnd     *string  `json:"discount_end,omitempty"`
	Tag             string   `json:"tag,omitempty"`
	Features        []string `json:"features,omitempty"`
}

// ProductView is a product as the storefront renders it: the listed price plus
// the effective price and discount state resolved at request time.
type ProductView struct {
	models.Product
	EffectivePrice float64 `json:"effective_price"`
	DiscountActive bool    `json:"discount_active"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Description:     req.Description,
		Image:           req.Image,
		Images:          pq.StringArray(req.Images),
		DiscountPercent: req.DiscountPercent,
		DiscountStart:   req.DiscountStart,
		DiscountEnd:     req.DiscountEnd,
		Tag:             req.Tag,
		Features:        pq.StringArray(req.Features),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.DiscountPercent != nil {
		updates["discount_percent"] = *req.DiscountPercent
	}
	if req.DiscountStart != nil {
		updates["discount_start"] = *req.DiscountStart
	}
	if req.DiscountEnd != nil {
		updates["discount_end"] = *req.DiscountEnd
	}
	if req.Tag != "" {
		updates["tag"] = req.Tag
	}
	if req.Features != nil {
		updates["features"] = pq.StringArray(req.Features)
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.db.First(&product, "id = ?", id)
	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// ListProducts fetches the full catalog in insertion order and applies the
// filter criteria in memory, the same selection the storefront grid shows.
func (s *ProductService) ListProducts(criteria FilterCriteria) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return FilterProducts(products, criteria), nil
}

// BuildProductViews resolves effective prices for a product list at the given
// instant.
func BuildProductViews(products []models.Product, now time.Time) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, ProductView{
			Product:        products[i],
			EffectivePrice: EffectivePrice(&products[i], now),
			DiscountActive: IsDiscountActive(&products[i], now),
		})
	}
	return views
}
