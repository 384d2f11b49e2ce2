package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                string     `gorm:"primaryKey;type:uuid" json:"id"`
	Email             string     `gorm:"column:email;unique;not null" json:"email"`
	FullName          string     `gorm:"column:full_name;not null" json:"full_name"`
	Phone             string     `gorm:"column:phone" json:"phone"`
	PasswordHash      string     `gorm:"column:password_hash;not null" json:"-"`
	DateOfBirth       *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	DateOfAnniversary *time.Time `gorm:"column:date_of_anniversary" json:"date_of_anniversary,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ProfileUpdate holds the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	FullName          *string
	Phone             *string
	DateOfBirth       *time.Time
	DateOfAnniversary *time.Time
}

func (p ProfileUpdate) Empty() bool {
	return p.FullName == nil && p.Phone == nil && p.DateOfBirth == nil && p.DateOfAnniversary == nil
}

// TokenPair is the credential set returned by signup, login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
