package entity

import (
	"gorm.io/gorm"
)

// Marketplace listing, unrelated to restaurant menus. Ownership moves to
// the buyer on purchase.
type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`

	OwnerID uint `gorm:"not null" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	// no default tag: gorm would skip inserting a false value
	Available bool `gorm:"not null" json:"available"`
}
