package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	gorm.Model
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url"`
}

// Offer represents a discount code. Offers are standalone records and are
// not linked to products.
type Offer struct {
	gorm.Model
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

// Admin represents an administrator in the system
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// BlacklistedToken records admin tokens revoked at logout
type BlacklistedToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
