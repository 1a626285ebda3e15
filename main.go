// @title StyleHub Storefront API
// @version 1.0
// @description StyleHub Storefront Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/config"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/cart_controller"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/filter_controller"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/product_controller"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/routes"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/services"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	// Load the product catalog (embedded seed, or CATALOG_PATH override)
	productCatalog, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("✅ Catalog loaded (%d products)", productCatalog.Len())

	// ✅ Initialize JWT Service for session tokens
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// In-memory account store (simulated auth)
	services.InitUserService(cfg.AuthDelay)

	// Per-session cart/wishlist stores
	sessions := store.NewSessionManager(cfg.SessionTTL)

	// Wire the catalog and pricing into the controllers
	product_controller.Init(productCatalog)
	filter_controller.Init(productCatalog)
	wishlist_controller.Init(productCatalog)
	cart_controller.Init(productCatalog, cfg.Pricing)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-Session-ID"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(sessions))
	api.Use(middleware.RateLimiter(300, time.Minute))

	routes.SetupStorefrontRoutes(api)
	routes.SetupAuthRoutes(api)
	routes.SetupUserRoutes(api)
	log.Println("✅ Storefront routes registered")

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", cfg.Port)
	router.Run(":" + cfg.Port)
}
