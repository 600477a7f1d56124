package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `json:"-"`
	Budget   float64 `gorm:"not null;default:1000" json:"budget"`
	Role     string  `gorm:"not null;default:customer" json:"role"`

	// Relations — preload only when needed
	Products  []Product  `gorm:"foreignKey:OwnerID" json:"-"`
	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}
