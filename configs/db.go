package configs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/azamatleskhan01/fastdelivery/entity"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the database selected by DB_DRIVER and migrates the schema.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Product{},
	)
}

// ConnectRedis returns a Redis client, or nil when REDIS_ADDR is unset or
// the server is unreachable. Callers treat nil as "cache disabled".
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, market cache disabled: %v", cfg.RedisAddr, err)
		return nil
	}
	return rdb
}
