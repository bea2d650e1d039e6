// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/models"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type OrderService struct {
	db             *gorm.DB
	paymentService *PaymentService
}

type CreateOrderRequest struct {
	ProductID     uuid.UUID            `json:"product_id" validate:"required"`
	Quantity      int                  `json:"quantity" validate:"required,min=1"`
	CustomerName  string               `json:"customer_name,omitempty" validate:"omitempty,max=255"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=card pay_on_delivery"`
}

type CreateOrderResponse struct {
	Order         *models.Order          `json:"order"`
	PaymentIntent *PaymentIntentResponse `json:"payment_intent,omitempty"`
}

func NewOrderService(db *gorm.DB, paymentService *PaymentService) *OrderService {
	return &OrderService{
		db:             db,
		paymentService: paymentService,
	}
}

// CreateOrder places an order for one product at its effective price. Card
// payments get a Stripe PaymentIntent; pay-on-delivery orders stay pending
// until fulfilment.
func (s *OrderService) CreateOrder(req *CreateOrderRequest, now time.Time) (*CreateOrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	reference, err := utils.GenerateOrderReference()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order reference: %w", err)
	}

	order := &models.Order{
		Reference:     reference,
		CustomerName:  req.CustomerName,
		ProductID:     product.ID,
		Quantity:      req.Quantity,
		TotalAmount:   EffectivePrice(&product, now) * float64(req.Quantity),
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	response := &CreateOrderResponse{Order: order}

	if req.PaymentMethod == models.PaymentMethodCard && s.paymentService != nil {
		intent, err := s.paymentService.CreatePaymentIntent(order)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		response.PaymentIntent = intent

		if err := s.db.Model(order).Update("payment_reference", intent.PaymentID).Error; err != nil {
			return nil, fmt.Errorf("failed to record payment reference: %w", err)
		}
	}

	s.db.Preload("Product").First(order, order.ID)
	return response, nil
}

// ListOrders returns orders for the admin view, newest first, paginated.
func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Preload("Product")

	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("customer_name ILIKE ? OR reference ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "total_amount", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderService) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &order, nil
}
