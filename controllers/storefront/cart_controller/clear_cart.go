package cart_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Clear the cart
// @Description Empties the session cart unconditionally.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	s, ok := sessionStore(c)
	if !ok {
		return
	}

	state := s.Dispatch(store.ClearCart{})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", buildCartResponse(state)))
}
