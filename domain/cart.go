package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartLine is one (user, product) row of the cart table.
type CartLine struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID string    `gorm:"column:product_id;type:uuid;uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartLine) TableName() string {
	return "cart"
}

func (c *CartLine) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type CartItem struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

type Cart struct {
	Items        []CartItem `json:"items"`
	TotalItems   int        `json:"total_items"`
	TotalPrice   float64    `json:"total_price"`
	TotalSavings float64    `json:"total_savings"`
	FinalTotal   float64    `json:"final_total"`
}
