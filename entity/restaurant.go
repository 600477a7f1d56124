package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	LogoPath    string `json:"logoPath"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
