// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/models"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	name := strings.TrimSpace(req.Name)

	var existing models.Category
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, errors.New("category already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	category := &models.Category{Name: name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
