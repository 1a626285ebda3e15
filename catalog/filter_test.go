package catalog

import (
	"testing"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []models.Product {
	return []models.Product{
		{
			ID:          "a",
			Name:        "Linen Shirt",
			Description: "Breathable summer shirt",
			Price:       2000,
			Category:    models.CategoryMens,
			Subcategory: "shirts",
			Sizes:       []models.Size{models.SizeM, models.SizeL},
			Colors:      []models.Color{{Name: "Red", Hex: "#ff0000"}},
			InStock:     true,
			Rating:      4.0,
			ReviewCount: 10,
			Tags:        []string{"linen", "summer"},
		},
		{
			ID:          "b",
			Name:        "Silk Blouse",
			Description: "Evening blouse",
			Price:       8000,
			Category:    models.CategoryWomens,
			Subcategory: "blouses",
			Sizes:       []models.Size{models.SizeS},
			Colors:      []models.Color{{Name: "Blue", Hex: "#0000ff"}},
			InStock:     false,
			Rating:      4.8,
			ReviewCount: 40,
			Tags:        []string{"silk"},
		},
		{
			ID:          "c",
			Name:        "Canvas Belt",
			Description: "Woven canvas belt",
			Price:       1500,
			Category:    models.CategoryAccessories,
			Subcategory: "belts",
			Sizes:       []models.Size{models.SizeM},
			Colors:      []models.Color{{Name: "Red", Hex: "#cc0000"}, {Name: "Olive", Hex: "#556b2f"}},
			InStock:     true,
			Rating:      3.9,
			ReviewCount: 5,
			Tags:        []string{"canvas"},
		},
	}
}

func TestFilterProductsDefaultsKeepInStockOnly(t *testing.T) {
	products := testProducts()

	result := FilterProducts(products, models.DefaultFilterState(), "")

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestFilterProductsStockAndPriceScenario(t *testing.T) {
	// Products A (price 2000, in stock, mens) and B (price 8000, out of
	// stock, womens) with default filters: only A passes.
	products := testProducts()[:2]

	filters := models.FilterState{
		Categories: []models.ProductCategory{},
		Sizes:      []models.Size{},
		Colors:     []string{},
		PriceRange: [2]models.Cents{0, 50000},
		InStock:    true,
	}

	result := FilterProducts(products, filters, "")

	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)
}

func TestFilterProductsSearchFields(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()
	filters.InStock = false

	cases := map[string]string{
		"name match":        "linen shirt",
		"description match": "evening",
		"category match":    "accessories",
		"subcategory match": "blouses",
		"tag match":         "canvas",
		"case insensitive":  "SILK",
		"padded query":      "  silk  ",
	}

	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			result := FilterProducts(products, filters, query)
			assert.NotEmpty(t, result, "query %q should match something", query)
		})
	}

	assert.Empty(t, FilterProducts(products, filters, "no-such-product"))
}

func TestFilterProductsByCategory(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()
	filters.InStock = false
	filters.Categories = []models.ProductCategory{models.CategoryWomens}

	result := FilterProducts(products, filters, "")

	require.Len(t, result, 1)
	assert.Equal(t, "b", result[0].ID)
}

func TestFilterProductsBySize(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()
	filters.InStock = false
	filters.Sizes = []models.Size{models.SizeM}

	result := FilterProducts(products, filters, "")

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestFilterProductsByColor(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()
	filters.InStock = false
	filters.Colors = []string{"Red"}

	result := FilterProducts(products, filters, "")

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestFilterProductsPriceRangeIsClosedInterval(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()
	filters.InStock = false
	filters.PriceRange = [2]models.Cents{1500, 2000}

	result := FilterProducts(products, filters, "")

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestFilterProductsInvertedPriceRangeMatchesNothing(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()
	filters.InStock = false
	filters.PriceRange = [2]models.Cents{5000, 1000}

	assert.Empty(t, FilterProducts(products, filters, ""))
}

func TestFilterProductsConjunction(t *testing.T) {
	products := testProducts()
	filters := models.FilterState{
		Categories: []models.ProductCategory{models.CategoryMens, models.CategoryAccessories},
		Sizes:      []models.Size{models.SizeM},
		Colors:     []string{"Red"},
		PriceRange: [2]models.Cents{1600, 50000},
		InStock:    true,
	}

	result := FilterProducts(products, filters, "shirt")

	// Only "a" satisfies every predicate simultaneously.
	require.Len(t, result, 1)
	assert.Equal(t, "a", result[0].ID)

	// Tightening the price range can only shrink the result.
	filters.PriceRange = [2]models.Cents{2100, 50000}
	assert.Empty(t, FilterProducts(products, filters, "shirt"))
}

func TestFilterProductsEmptyInput(t *testing.T) {
	assert.Empty(t, FilterProducts(nil, models.DefaultFilterState(), ""))
	assert.Empty(t, FilterProducts([]models.Product{}, models.DefaultFilterState(), "shirt"))
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	filters := models.DefaultFilterState()

	FilterProducts(products, filters, "belt")

	assert.Equal(t, testProducts(), products)
}
