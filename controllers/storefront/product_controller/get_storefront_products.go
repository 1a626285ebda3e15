package product_controller

import (
	"log"
	"net/http"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/catalog"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/middleware"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve storefront products with optional search, category, size, colour, availability, price range and sorting filters.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (substring match)"
// @Param category query []string false "Categories (repeatable)"
// @Param size query []string false "Sizes (repeatable)"
// @Param color query []string false "Colour names (repeatable)"
// @Param availability query string false "Availability filter (in_stock | all)"
// @Param minPrice query int false "Minimum price in cents"
// @Param maxPrice query int false "Maximum price in cents"
// @Param sortBy query string false "Sort option (price-low, price-high, newest, popular, rating)" default(popular)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid filter parameters"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	searchQuery := c.Query("q")
	sortBy := models.ParseSortOption(c.DefaultQuery("sortBy", string(models.SortPopular)))

	filters, err := parseFilterQuery(c)
	if err != nil {
		log.Printf("[store.products] rejected filter query: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	// Keep the session's query configuration in step with what the caller
	// last asked for, so the filter panel can be re-rendered from state.
	if sessionStore, ok := middleware.GetSessionStore(c); ok {
		sessionStore.Dispatch(store.UpdateFilters{Patch: models.FilterPatch{
			Categories: &filters.Categories,
			Sizes:      &filters.Sizes,
			Colors:     &filters.Colors,
			PriceRange: &filters.PriceRange,
			InStock:    &filters.InStock,
		}})
		sessionStore.Dispatch(store.SetSearchQuery{Query: searchQuery})
		sessionStore.Dispatch(store.SetSortBy{SortBy: sortBy})
	}

	filtered := catalog.FilterProducts(productCatalog.Products(), filters, searchQuery)
	sorted := catalog.SortProducts(filtered, sortBy)

	totalCount := len(sorted)
	totalPages := (totalCount + limit - 1) / limit

	pageItems := paginate(sorted, page, limit)
	responses := make([]models.StorefrontProductResponse, 0, len(pageItems))
	for _, p := range pageItems {
		responses = append(responses, p.ToStorefrontResponse())
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		responses,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
