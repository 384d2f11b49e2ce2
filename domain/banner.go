package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Banner struct {
	ID           string `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string `gorm:"column:title;not null" json:"title"`
	Subtitle     string `gorm:"column:subtitle" json:"subtitle,omitempty"`
	ImageURL     string `gorm:"column:image_url;not null" json:"image_url"`
	LinkURL      string `gorm:"column:link_url" json:"link_url,omitempty"`
	ButtonText   string `gorm:"column:button_text" json:"button_text"`
	DisplayOrder int    `gorm:"column:display_order;default:0" json:"display_order"`
	IsActive     bool   `gorm:"column:is_active" json:"-"`
}

func (Banner) TableName() string {
	return "banners"
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
