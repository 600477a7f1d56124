package entity

import (
	"gorm.io/gorm"
)

// One pending line per (user, menu item); quantity stays within [1,10].
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_user_menu_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_user_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}

const (
	MinCartQuantity = 1
	MaxCartQuantity = 10
)
