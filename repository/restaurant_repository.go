package repository

import (
	"github.com/azamatleskhan01/fastdelivery/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

// GetWithMenu returns the restaurant and its menu items.
func (r *RestaurantRepository) GetWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("MenuItems").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
