package catalog

import (
	"testing"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueProjectionsFirstSeenOrder(t *testing.T) {
	products := testProducts()

	assert.Equal(t,
		[]models.ProductCategory{models.CategoryMens, models.CategoryWomens, models.CategoryAccessories},
		UniqueCategories(products))
	assert.Equal(t,
		[]models.Size{models.SizeM, models.SizeL, models.SizeS},
		UniqueSizes(products))
	assert.Equal(t, []string{"Red", "Blue", "Olive"}, UniqueColors(products))
}

func TestUniqueSubcategories(t *testing.T) {
	products := testProducts()

	assert.Equal(t, []string{"shirts", "blouses", "belts"}, UniqueSubcategories(products, ""))
	assert.Equal(t, []string{"shirts"}, UniqueSubcategories(products, models.CategoryMens))
}

func TestPriceSpan(t *testing.T) {
	span := PriceSpan(testProducts())

	assert.Equal(t, models.Cents(1500), span.Min)
	assert.Equal(t, models.Cents(8000), span.Max)
}

func TestPriceSpanEmptyCatalogUsesDefaults(t *testing.T) {
	span := PriceSpan(nil)

	assert.Equal(t, models.DefaultMinPrice, span.Min)
	assert.Equal(t, models.DefaultMaxPrice, span.Max)
}

func TestBuildFilterMetadata(t *testing.T) {
	metadata := BuildFilterMetadata(testProducts())

	require.NotNil(t, metadata.Availability)
	assert.Equal(t, 2, metadata.Availability.InStock)
	assert.Equal(t, 1, metadata.Availability.OutOfStock)

	require.Len(t, metadata.Categories, 3)
	assert.Equal(t, models.FilterOption{Label: "mens", Value: "mens", Count: 1}, metadata.Categories[0])

	require.Len(t, metadata.Sizes, 3)
	assert.Equal(t, models.FilterOption{Label: "M", Value: "M", Count: 2}, metadata.Sizes[0])

	require.Len(t, metadata.Colors, 3)
	assert.Equal(t, models.FilterOption{Label: "Red", Value: "Red", Count: 2}, metadata.Colors[0])

	require.NotNil(t, metadata.PriceRange)
	assert.Equal(t, models.Cents(1500), metadata.PriceRange.Min)
	assert.Equal(t, models.Cents(8000), metadata.PriceRange.Max)
}
