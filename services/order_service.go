package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vendora-commerce/vendora-storefront-backend/cart"
	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderService turns cart snapshots into persisted storefront orders.
type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

// generateOrderNumber builds a human-readable order reference. The random
// suffix keeps concurrent checkouts from colliding within the same second.
func generateOrderNumber() string {
	suffix := uuid.Must(uuid.NewV7()).String()[:8]
	return fmt.Sprintf("VS-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}

// CreateOrder freezes the cart into an order and persists it. The cart lines
// already carry price snapshots taken at add-to-cart time, so totals here are
// computed from the snapshot, not re-read from products.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	storeID uuid.UUID,
	c *cart.Cart,
	req models.CheckoutRequest,
) (*models.Order, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	orderLines := make(models.OrderLineList, 0, len(lines))
	totalItems := 0
	totalAmount := 0.0
	for _, line := range lines {
		orderLines = append(orderLines, models.OrderLine{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Image:     line.Image,
		})
		totalItems += line.Quantity
		totalAmount += line.Price * float64(line.Quantity)
	}

	order := &models.Order{
		StoreID:       storeID,
		OrderNumber:   generateOrderNumber(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ShippingLine1: req.ShippingLine1,
		ShippingCity:  req.ShippingCity,
		Lines:         orderLines,
		TotalItems:    totalItems,
		TotalAmount:   totalAmount,
		Status:        "pending",
	}

	if err := config.DB.WithContext(ctx).Create(order).Error; err != nil {
		log.Printf("[order] failed to create order for store %s: %v", storeID, err)
		return nil, err
	}

	log.Printf("[order] created order %s (%d items, %.2f) for store %s",
		order.OrderNumber, totalItems, totalAmount, storeID)

	// The cart is spent once the order exists.
	c.Clear()

	return order, nil
}

// GetOrdersByStore lists a store's orders, newest first.
func (s *OrderService) GetOrdersByStore(ctx context.Context, storeID uuid.UUID, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var orders []models.Order
	if err := config.DB.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
