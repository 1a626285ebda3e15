package routes

import (
	store_cart "github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/cart_controller"
	store_filter "github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/filter_controller"
	store_product "github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/product_controller"
	store_wishlist "github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the public storefront surface. Every
// route runs behind the session middleware applied by the caller.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/export", store_product.ExportProductsToExcel)
		products.GET("/:id", store_product.GetProductByID) // Single product
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// Cart routes
	cart := router.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.DELETE("", store_cart.ClearCart)
		cart.POST("/items", store_cart.AddCartItem)
		cart.PUT("/items", store_cart.UpdateCartItem)
		cart.DELETE("/items", store_cart.RemoveCartItem)
		cart.GET("/receipt", store_cart.DownloadCartReceiptPDF)
	}

	// Wishlist routes
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", store_wishlist.GetWishlist)
		wishlist.POST("/toggle/:productId", store_wishlist.ToggleWishlist)
	}
}
