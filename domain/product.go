package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Description   string    `gorm:"column:description" json:"description"`
	Category      string    `gorm:"column:category;index" json:"category"`
	Price         float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	DiscountPrice *float64  `gorm:"column:discount_price;type:numeric" json:"discount_price"`
	Stock         int       `gorm:"column:stock;not null;default:0" json:"stock"`
	Unit          string    `gorm:"column:unit" json:"unit"`
	ImageURL      string    `gorm:"column:image_url" json:"image_url"`
	Rating        float64   `gorm:"column:rating;type:numeric;default:0" json:"rating"`
	ReviewCount   int       `gorm:"column:review_count;default:0" json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// EffectivePrice is the discount price when one is set, otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Product list sort keys.
const (
	SortByPrice     = "price"
	SortByPriceDesc = "price_desc"
	SortByRating    = "rating"
	SortByCreatedAt = "created_at"
	SortByName      = "name"
)

// ProductFilter is a normalized catalog query.
type ProductFilter struct {
	Page     int
	PageSize int
	Category string
	Search   string
	SortBy   string
	Order    string
}

type ProductPage struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
