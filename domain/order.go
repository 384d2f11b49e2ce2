package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment methods and payment states.
const (
	PaymentMethodCOD = "cod"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusCOD     = "cod"
)

type Order struct {
	ID              string                              `gorm:"primaryKey;type:uuid" json:"id"`
	OrderNumber     string                              `gorm:"column:order_number;uniqueIndex;not null" json:"order_number"`
	UserID          string                              `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Status          OrderStatus                         `gorm:"column:status;not null" json:"status"`
	PaymentMethod   string                              `gorm:"column:payment_method;not null" json:"payment_method"`
	PaymentStatus   string                              `gorm:"column:payment_status;not null" json:"payment_status"`
	TotalAmount     float64                             `gorm:"column:total_amount;type:numeric;not null" json:"total_amount"`
	ShippingAddress datatypes.JSONType[ShippingAddress] `gorm:"column:shipping_address" json:"shipping_address"`
	Items           []OrderItem                         `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt       time.Time                           `json:"created_at"`
	UpdatedAt       time.Time                           `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is a frozen snapshot of a cart line at order time.
type OrderItem struct {
	ID           string  `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID      string  `gorm:"column:order_id;type:uuid;index;not null" json:"order_id"`
	ProductID    string  `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	ProductName  string  `gorm:"column:product_name;not null" json:"product_name"`
	Quantity     int     `gorm:"column:quantity;not null" json:"quantity"`
	Price        float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	Subtotal     float64 `gorm:"column:subtotal;type:numeric;not null" json:"subtotal"`
	ProductImage string  `gorm:"-" json:"product_image,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// PaymentDetails are the gateway fields echoed back by the checkout widget.
type PaymentDetails struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// PlaceOrderInput is the request for the checkout pipeline.
type PlaceOrderInput struct {
	UserID         string
	AddressID      string
	PaymentMethod  string
	PaymentDetails *PaymentDetails
}

// GatewayOrder is what the storefront needs to open the payment widget.
type GatewayOrder struct {
	RazorpayKey     string  `json:"razorpay_key"`
	Amount          int64   `json:"amount"`
	Currency        string  `json:"currency"`
	RazorpayOrderID string  `json:"razorpay_order_id"`
	TotalAmount     float64 `json:"total_amount"`
}
