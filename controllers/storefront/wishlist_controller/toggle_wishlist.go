package wishlist_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// ToggleWishlist godoc
// @Summary Toggle wishlist membership
// @Description Adds the product when absent, removes it when present. Toggling twice restores the original state.
// @Tags Storefront - Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /wishlist/toggle/{productId} [post]
func ToggleWishlist(c *gin.Context) {
	s, ok := middleware.GetSessionStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialized"))
		return
	}

	productID := c.Param("productId")
	if _, found := productCatalog.ProductByID(productID); !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	state := s.Dispatch(store.ToggleWishlist{ProductID: productID})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist updated", gin.H{
		"product_id":  productID,
		"in_wishlist": state.InWishlist(productID),
		"wishlist":    state.Wishlist,
	}))
}
