// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	Category    string         `json:"category" gorm:"size:100;index"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Image       string         `json:"image" gorm:"size:512"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`

	// Discount window bounds are stored as loose date strings; unparseable or
	// empty values leave that side of the window open.
	DiscountPercent float64 `json:"discount_percent" gorm:"type:decimal(5,2);default:0"`
	DiscountStart   *string `json:"discount_start,omitempty" gorm:"size:64"`
	DiscountEnd     *string `json:"discount_end,omitempty" gorm:"size:64"`

	AverageRating float64        `json:"average_rating" gorm:"type:decimal(3,2);default:0"`
	RatingCount   int64          `json:"rating_count" gorm:"default:0"`
	Tag           string         `json:"tag" gorm:"size:50"`
	Features      pq.StringArray `json:"features" gorm:"type:text[]"`

	// Relationships
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ProductID"`
}
