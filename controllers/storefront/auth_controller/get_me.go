package auth_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the authenticated user
// @Description Returns the account behind the presented session token.
// @Tags Storefront - Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	user, err := services.GetUserService().GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched", user.ToResponse()))
}
