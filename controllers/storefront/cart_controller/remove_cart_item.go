package cart_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Deletes the line matching the variant triple. Removing an absent line is a no-op.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.RemoveCartItemRequest true "Variant to remove"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /cart/items [delete]
func RemoveCartItem(c *gin.Context) {
	s, ok := sessionStore(c)
	if !ok {
		return
	}

	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	state := s.Dispatch(store.RemoveFromCart{
		Key: models.VariantKey{
			ProductID: req.ProductID,
			Size:      req.Size,
			ColorName: req.ColorName,
		},
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", buildCartResponse(state)))
}
