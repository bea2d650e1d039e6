// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	Reference        string        `json:"reference" gorm:"size:32;uniqueIndex"`
	CustomerName     string        `json:"customer_name,omitempty" gorm:"size:255"`
	ProductID        uuid.UUID     `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity         int           `json:"quantity" gorm:"default:1"`
	TotalAmount      float64       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status           OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentMethod    PaymentMethod `json:"payment_method" gorm:"type:varchar(20);default:'pay_on_delivery'"`
	PaymentReference string        `json:"payment_reference,omitempty" gorm:"size:255"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
