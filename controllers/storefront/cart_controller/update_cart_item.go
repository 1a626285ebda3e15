package cart_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Update a cart line's quantity
// @Description Sets the quantity for the line matching the variant triple. A quantity of zero or less removes the line.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "Variant and new quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /cart/items [put]
func UpdateCartItem(c *gin.Context) {
	s, ok := sessionStore(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	state := s.Dispatch(store.UpdateQuantity{
		Key: models.VariantKey{
			ProductID: req.ProductID,
			Size:      req.Size,
			ColorName: req.ColorName,
		},
		Quantity: req.Quantity,
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", buildCartResponse(state)))
}
