package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_review_user_product;not null" json:"user_id"`
	ProductID    string    `gorm:"column:product_id;type:uuid;uniqueIndex:idx_review_user_product;not null" json:"product_id"`
	Rating       int       `gorm:"column:rating;not null" json:"rating"`
	Title        string    `gorm:"column:title" json:"title"`
	Comment      string    `gorm:"column:comment" json:"comment"`
	HelpfulCount int       `gorm:"column:helpful_count;default:0" json:"helpful_count"`
	UserName     string    `gorm:"column:user_name;->;-:migration" json:"user_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ReviewPage struct {
	Reviews       []Review `json:"reviews"`
	Total         int64    `json:"total"`
	AverageRating float64  `json:"average_rating"`
	Page          int      `json:"page"`
	PageSize      int      `json:"page_size"`
}
