package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/services"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Log in
// @Description Checks credentials against the in-memory account store and returns a session token.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password (min 6 characters) are required"))
		return
	}

	user, err := services.GetUserService().Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, err.Error()))
			return
		}
		log.Printf("[auth.login] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	token, err := services.GenerateSessionJWT(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.login] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue session token"))
		return
	}

	setAuthCookie(c, token)
	utils.LogLoginEvent(c, user.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", models.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}))
}
