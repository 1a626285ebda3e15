package cart_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product variant to the cart
// @Description Adds a quantity of one product variant. An existing line for the same variant has its quantity incremented (merge-on-insert).
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Variant and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid variant or quantity"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	s, ok := sessionStore(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	// Quantity defaults to 1; the boundary rejects non-positive values so
	// the reducer never sees them.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quantity must be positive"))
		return
	}

	product, found := productCatalog.ProductByID(req.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	if len(product.Sizes) > 0 && !product.HasSize(req.Size) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product is not offered in this size"))
		return
	}

	color, found := product.ColorByName(req.ColorName)
	if !found {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product is not offered in this colour"))
		return
	}

	state := s.Dispatch(store.AddToCart{
		Product:  product,
		Size:     req.Size,
		Color:    color,
		Quantity: quantity,
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", buildCartResponse(state)))
}
