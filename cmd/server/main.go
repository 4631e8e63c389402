package main

import (
	"log"
	"time"

	"coffeeshop/internal/config"
	"coffeeshop/internal/database"
	"coffeeshop/internal/handlers"
	"coffeeshop/internal/redis"
	"coffeeshop/internal/repository"
	"coffeeshop/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis. The server runs uncached when Redis is unreachable.
	var reportCache services.ReportCache
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without report cache: %v", err)
	} else {
		reportCache = redisClient
		defer redisClient.Close()
	}

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db)
	coffeeRepo := repository.NewCoffeeRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminRepo)
	coffeeService := services.NewCoffeeService(coffeeRepo)
	storeService := services.NewStoreService(storeRepo)
	orderService := services.NewOrderService(
		orderRepo,
		orderItemRepo,
		userRepo,
		reportCache,
		time.Duration(cfg.CacheTTL)*time.Second,
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	coffeeHandler := handlers.NewCoffeeHandler(coffeeService)
	storeHandler := handlers.NewStoreHandler(storeService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Setup routes
	router := gin.Default()

	auth := router.Group("/auth")
	{
		auth.POST("/signup/", authHandler.Signup)
		auth.POST("/login/", authHandler.Login)
	}

	store := router.Group("/store")
	{
		store.POST("/addstore/", storeHandler.AddStore)
		store.PUT("/updatestore/:store_id", storeHandler.UpdateStore)
		store.GET("/getstores/", storeHandler.GetStores)
		store.DELETE("/deletestore/:store_id", storeHandler.DeleteStore)
	}

	coffee := router.Group("/coffee")
	{
		coffee.POST("/addcoffee/", coffeeHandler.AddCoffee)
		coffee.GET("/getcoffees/", coffeeHandler.GetCoffees)
		coffee.PUT("/updatecoffee/:coffee_id", coffeeHandler.UpdateCoffee)
		coffee.DELETE("/deletecoffee/:coffee_id", coffeeHandler.DeleteCoffee)
	}

	order := router.Group("/order")
	{
		order.GET("/getorders/", orderHandler.GetOrders)
		order.GET("/getstatusorders/:status", orderHandler.GetOrdersByStatus)
		order.GET("/ordercount/", orderHandler.GetOrderCount)
		order.DELETE("/deleteorder/:id", orderHandler.DeleteOrder)
		order.GET("/topselling/", orderHandler.GetTopSelling)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
