package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Order line snapshot (JSONB)
// ═══════════════════════════════════════════════════════════

// OrderLine is the cart line snapshot frozen into an order at checkout.
type OrderLine struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

type OrderLineList []OrderLine

func (l *OrderLineList) Scan(value interface{}) error {
	if value == nil {
		*l = make(OrderLineList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OrderLineList")
	}
	return json.Unmarshal(bytes, l)
}

func (l OrderLineList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderLine{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Order (GORM)
// ═══════════════════════════════════════════════════════════

type Order struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	StoreID       uuid.UUID     `json:"store_id" gorm:"type:uuid;not null;index"`
	OrderNumber   string        `json:"order_number" gorm:"not null;uniqueIndex"`
	CustomerName  string        `json:"customer_name" gorm:"not null"`
	CustomerEmail string        `json:"customer_email" gorm:"not null"`
	CustomerPhone string        `json:"customer_phone"`
	ShippingLine1 string        `json:"shipping_line1"`
	ShippingCity  string        `json:"shipping_city"`
	Lines         OrderLineList `json:"lines" gorm:"type:jsonb;not null;default:'[]'"`
	TotalItems    int           `json:"total_items" gorm:"not null"`
	TotalAmount   float64       `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status        string        `json:"status" gorm:"not null;check:status IN ('pending', 'confirmed', 'cancelled');default:'pending'"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "storefront_orders"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	ShippingLine1 string `json:"shipping_line1"`
	ShippingCity  string `json:"shipping_city"`
}

type CheckoutResponse struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	TotalAmount float64 `json:"total_amount"`
}
