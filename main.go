package main

import (
	"fmt"
	"log"

	"github.com/azamatleskhan01/fastdelivery/configs"
	"github.com/azamatleskhan01/fastdelivery/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedRestaurants(db); err != nil {
		log.Fatalf("seed restaurants failed: %v", err)
	}

	rdb := configs.ConnectRedis(cfg)

	r := gin.Default()
	routes.RegisterRoutes(r, db, rdb, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
