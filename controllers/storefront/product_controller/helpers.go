package product_controller

import (
	"fmt"
	"strconv"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

var productCatalog *catalog.Catalog

// Init wires the loaded catalog into this controller.
func Init(c *catalog.Catalog) {
	productCatalog = c
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseFilterQuery maps the request's query parameters onto a FilterState.
// Unknown categories/sizes and an inverted price range are rejected here at
// the boundary; the engine itself stays total.
func parseFilterQuery(c *gin.Context) (models.FilterState, error) {
	filters := models.DefaultFilterState()

	for _, raw := range c.QueryArray("category") {
		cat := models.ProductCategory(raw)
		if !cat.Valid() {
			return filters, fmt.Errorf("unknown category %q", raw)
		}
		filters.Categories = append(filters.Categories, cat)
	}

	for _, raw := range c.QueryArray("size") {
		size := models.Size(raw)
		if !size.Valid() {
			return filters, fmt.Errorf("unknown size %q", raw)
		}
		filters.Sizes = append(filters.Sizes, size)
	}

	filters.Colors = append(filters.Colors, c.QueryArray("color")...)

	if v := c.Query("minPrice"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			return filters, fmt.Errorf("invalid minPrice %q", v)
		}
		filters.PriceRange[0] = models.Cents(cents)
	}
	if v := c.Query("maxPrice"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil || cents < 0 {
			return filters, fmt.Errorf("invalid maxPrice %q", v)
		}
		filters.PriceRange[1] = models.Cents(cents)
	}
	if filters.PriceRange[0] > filters.PriceRange[1] {
		return filters, fmt.Errorf("minPrice %d exceeds maxPrice %d", filters.PriceRange[0], filters.PriceRange[1])
	}

	switch c.Query("availability") {
	case "", "in_stock", "inStock":
		filters.InStock = true
	case "all":
		filters.InStock = false
	default:
		return filters, fmt.Errorf("invalid availability %q", c.Query("availability"))
	}

	return filters, nil
}

func paginate(products []models.Product, page, limit int) []models.Product {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
