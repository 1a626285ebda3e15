package wishlist_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

var productCatalog *catalog.Catalog

// Init wires the loaded catalog into this controller.
func Init(c *catalog.Catalog) {
	productCatalog = c
}

// WishlistResponse carries the membership set plus rendered product cards,
// in insertion order.
type WishlistResponse struct {
	ProductIDs []string                           `json:"product_ids"`
	Products   []models.StorefrontProductResponse `json:"products"`
}

// GetWishlist godoc
// @Summary Get the session wishlist
// @Description Returns the wishlisted product IDs and their product cards, in insertion order.
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=WishlistResponse}
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	s, ok := middleware.GetSessionStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialized"))
		return
	}

	state := s.State()
	response := WishlistResponse{
		ProductIDs: state.Wishlist,
		Products:   make([]models.StorefrontProductResponse, 0, len(state.Wishlist)),
	}
	for _, id := range state.Wishlist {
		if product, found := productCatalog.ProductByID(id); found {
			response.Products = append(response.Products, product.ToStorefrontResponse())
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched", response))
}
