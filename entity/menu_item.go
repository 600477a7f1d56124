package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImagePath   string  `json:"imagePath"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when the owning restaurant is needed

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
