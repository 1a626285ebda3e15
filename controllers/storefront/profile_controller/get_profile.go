// ════════════════════════════════════════════════════════════
// Path: controllers/storefront/profile_controller/get_profile.go
// Get authenticated user's profile
// ════════════════════════════════════════════════════════════

package profile_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/services"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile plus recent login activity
// @Tags Storefront - Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /user/profile [get]
func GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	user, err := services.GetUserService().GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched", gin.H{
		"user":          user.ToResponse(),
		"recent_logins": utils.RecentLoginEvents(userID, 5),
	}))
}
