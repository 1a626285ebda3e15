package filter_controller

import (
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

var productCatalog *catalog.Catalog

// Init wires the loaded catalog into this controller.
func Init(c *catalog.Catalog) {
	productCatalog = c
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, categories, sizes, colours and price range for storefront filters
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	metadata := catalog.BuildFilterMetadata(productCatalog.Products())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
