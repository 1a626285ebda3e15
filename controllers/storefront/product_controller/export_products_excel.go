package product_controller

import (
	"log"
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// ExportProductsToExcel godoc
// @Summary Export the catalog as Excel
// @Description Download the full product catalog as an .xlsx workbook.
// @Tags Storefront - Products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 "Excel file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/products/export [get]
func ExportProductsToExcel(c *gin.Context) {
	file, err := services.BuildCatalogWorkbook(productCatalog.Products())
	if err != nil {
		log.Printf("[store.export] failed to build workbook: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create Excel sheet"))
		return
	}

	// Set response headers for download
	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := file.Write(c.Writer); err != nil {
		log.Printf("[store.export] failed to write workbook: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to write Excel file"))
		return
	}
}
