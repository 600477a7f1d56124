package configs

import (
	"log"

	"github.com/azamatleskhan01/fastdelivery/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the administrator account on first boot.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: "admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedRestaurants loads a small demo catalog when the table is empty.
func SeedRestaurants(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Sky Pizza",
			Description: "Wood-fired pizza, drone-delivered hot",
			LogoPath:    "restaurant_logos/sky_pizza.png",
			MenuItems: []entity.MenuItem{
				{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 5.00, ImagePath: "menu_item_images/margherita.png"},
				{Name: "Pepperoni", Description: "Double pepperoni", Price: 6.50, ImagePath: "menu_item_images/pepperoni.png"},
				{Name: "Garlic Bread", Price: 3.50, ImagePath: "menu_item_images/garlic_bread.png"},
			},
		},
		{
			Name:        "Steppe Grill",
			Description: "Kebabs and grilled plates",
			LogoPath:    "restaurant_logos/steppe_grill.png",
			MenuItems: []entity.MenuItem{
				{Name: "Chicken Kebab", Price: 7.00, ImagePath: "menu_item_images/chicken_kebab.png"},
				{Name: "Lamb Plate", Price: 9.50, ImagePath: "menu_item_images/lamb_plate.png"},
			},
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}
	log.Println("demo restaurants seeded")
	return nil
}
