package routes

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/controllers/storefront/profile_controller"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/profile", profile_controller.GetProfile)
		user.PATCH("/profile", profile_controller.UpdateProfile)
	}
}
