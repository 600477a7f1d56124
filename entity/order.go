package entity

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusCompleted OrderStatus = "completed"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when needed

	TotalPrice        float64     `gorm:"not null" json:"totalPrice"`
	DeliveryLatitude  float64     `json:"deliveryLatitude"`
	DeliveryLongitude float64     `json:"deliveryLongitude"`
	Status            OrderStatus `gorm:"type:varchar(20);not null;default:created" json:"status"`

	Items []OrderItem `json:"items"`
}
