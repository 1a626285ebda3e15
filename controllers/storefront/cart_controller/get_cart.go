package cart_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the session cart
// @Description Returns the cart lines plus derived totals (subtotal, shipping, tax, total).
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func GetCart(c *gin.Context) {
	s, ok := sessionStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", buildCartResponse(s.State())))
}
