package cart_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

var (
	productCatalog *catalog.Catalog
	pricing        store.PricingConfig
)

// Init wires the loaded catalog and the pricing configuration into this
// controller.
func Init(c *catalog.Catalog, p store.PricingConfig) {
	productCatalog = c
	pricing = p
}

// sessionStore pulls the caller's session store off the context, answering
// 500 when the session middleware did not run.
func sessionStore(c *gin.Context) (*store.Store, bool) {
	s, ok := middleware.GetSessionStore(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialized"))
		return nil, false
	}
	return s, true
}

// buildCartResponse renders a state snapshot as the cart payload.
func buildCartResponse(state store.AppState) models.CartResponse {
	items := make([]models.CartItemResponse, 0, len(state.Cart))
	for _, item := range state.Cart {
		items = append(items, item.ToCartItemResponse())
	}
	return models.CartResponse{
		Items:   items,
		Summary: store.Summarize(state, pricing),
	}
}
