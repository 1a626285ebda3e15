package routes

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/auth_controller"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the simulated authentication flow.
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", auth_controller.Signup)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}
