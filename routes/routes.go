package routes

import (
	"github.com/azamatleskhan01/fastdelivery/configs"
	"github.com/azamatleskhan01/fastdelivery/controllers"
	"github.com/azamatleskhan01/fastdelivery/middlewares"
	"github.com/azamatleskhan01/fastdelivery/repository"
	"github.com/azamatleskhan01/fastdelivery/services"
	"github.com/azamatleskhan01/fastdelivery/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	productCache := repository.NewProductCache(rdb)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	marketSvc := services.NewMarketService(db, productRepo, userRepo, productCache)
	droneSvc := services.NewDroneService()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc, droneSvc)
	marketCtrl := controllers.NewMarketController(marketSvc)
	droneCtrl := controllers.NewDroneController(droneSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Restaurants (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Marketplace
	r.GET("/market", auth, marketCtrl.List)
	r.POST("/add_product", auth, marketCtrl.Add)
	r.GET("/delete_product/:id", adminOnly, marketCtrl.Delete)
	r.GET("/buy/:id", auth, marketCtrl.Buy)

	// Cart
	r.GET("/cart", auth, cartCtrl.Get)
	r.POST("/add_to_cart", auth, cartCtrl.Add)
	r.POST("/update_cart/:id", auth, cartCtrl.UpdateQuantity)
	r.GET("/remove_from_cart/:id", auth, cartCtrl.Remove)

	// Checkout & orders
	r.GET("/checkout", auth, orderCtrl.CheckoutSummary)
	r.POST("/checkout", auth, orderCtrl.Checkout)
	r.POST("/create_order", auth, orderCtrl.Create)
	r.GET("/orders", auth, orderCtrl.ListForMe)
	r.GET("/orders/:id", auth, orderCtrl.Detail)

	// Drone delivery
	r.POST("/start_drone", auth, orderCtrl.StartDrone)
	r.POST("/complete_delivery", auth, orderCtrl.CompleteDelivery)
	r.GET("/get_positions", droneCtrl.GetPositions)
	r.POST("/calculate_eta", droneCtrl.CalculateETA)

	// Live telemetry stream
	hub := ws.NewTelemetryHub(droneSvc)
	go hub.Run()
	r.GET("/ws/telemetry", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.Handle)
}
