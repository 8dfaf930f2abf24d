package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vendora-commerce/vendora-storefront-backend/config"
	"github.com/vendora-commerce/vendora-storefront-backend/routes/builder_routes"
	"github.com/vendora-commerce/vendora-storefront-backend/routes/store_routes"
	"github.com/vendora-commerce/vendora-storefront-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"X-Session-ID"},
	}

	// Expire idle shopper carts in the background
	services.StartCartSweeper(15 * time.Minute)

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Merchant site builder (JWT + rate limited)
	builder_routes.SetupTemplateRoutes(api)
	log.Println("✅ Builder routes registered")

	// Public storefront (no auth, session header carts)
	store_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
