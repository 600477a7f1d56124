package entity

import (
	"gorm.io/gorm"
)

// Snapshot of a cart line at checkout. PriceAtTime is frozen at order
// creation and never follows later menu price changes.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload when the item name is needed

	Quantity    int     `gorm:"not null" json:"quantity"`
	PriceAtTime float64 `gorm:"not null" json:"priceAtTime"`
}
