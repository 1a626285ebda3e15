package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Signup godoc
// @Summary Create an account
// @Description Registers an in-memory account and returns a session token. Accounts are volatile and reset on restart.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email, password (min 6 characters) and name are required"))
		return
	}

	user, err := services.GetUserService().Signup(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	token, err := services.GenerateSessionJWT(user.ID.String(), user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.signup] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue session token"))
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}))
}

// setAuthCookie mirrors the token into an HTTP-only cookie so browser
// clients do not need to manage the Authorization header.
func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie("auth_token", token, 7*24*3600, "/", "", false, true)
}
