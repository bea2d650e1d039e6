// internal/services/payment_service.go
package services

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/config"
	"github.com/highgrip/storefront-backend/internal/models"
)

type PaymentService struct {
	db     *gorm.DB
	config *config.Config
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

func NewPaymentService(db *gorm.DB, cfg *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		db:     db,
		config: cfg,
	}
}

// CreatePaymentIntent opens a Stripe PaymentIntent for a card-paid order.
func (s *PaymentService) CreatePaymentIntent(order *models.Order) (*PaymentIntentResponse, error) {
	amountInMinorUnits := int64(order.TotalAmount * 100)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInMinorUnits),
		Currency: stripe.String(s.config.Payment.Currency),
	}
	params.AddMetadata("order_id", order.ID.String())
	params.AddMetadata("order_reference", order.Reference)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}

// ConfirmPayment reconciles an order with its Stripe PaymentIntent state.
func (s *PaymentService) ConfirmPayment(order *models.Order) error {
	if order.PaymentReference == "" {
		return fmt.Errorf("order %s has no payment reference", order.Reference)
	}

	pi, err := paymentintent.Get(order.PaymentReference, nil)
	if err != nil {
		return fmt.Errorf("failed to get payment intent: %w", err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		order.Status = models.OrderStatusPaid
	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		order.Status = models.OrderStatusPending
	default:
		order.Status = models.OrderStatusCancelled
	}

	if err := s.db.Model(order).Update("status", order.Status).Error; err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
