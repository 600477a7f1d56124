package services

import (
	"fmt"
	"testing"

	"github.com/azamatleskhan01/fastdelivery/configs"
	"github.com/azamatleskhan01/fastdelivery/entity"
	"github.com/azamatleskhan01/fastdelivery/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The DSN is keyed by test
// name because gorm pools connections and a plain :memory: DSN would give
// each connection its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewRestaurantRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func newMarketService(db *gorm.DB) *MarketService {
	return NewMarketService(db, repository.NewProductRepository(db), repository.NewUserRepository(db), repository.NewProductCache(nil))
}

func createUser(t *testing.T, db *gorm.DB, username string, budget float64) *entity.User {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	u := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Budget:   budget,
		Role:     "customer",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, name string, prices ...float64) *entity.Restaurant {
	t.Helper()

	rest := &entity.Restaurant{Name: name}
	for i, p := range prices {
		rest.MenuItems = append(rest.MenuItems, entity.MenuItem{
			Name:  fmt.Sprintf("%s item %d", name, i+1),
			Price: p,
		})
	}
	if err := db.Create(rest).Error; err != nil {
		t.Fatalf("create restaurant %s: %v", name, err)
	}
	return rest
}

func createProduct(t *testing.T, db *gorm.DB, ownerID uint, name string, price float64, available bool) *entity.Product {
	t.Helper()

	p := &entity.Product{Name: name, Price: price, OwnerID: ownerID, Available: available}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product %s: %v", name, err)
	}
	return p
}
