package store

import (
	"testing"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tee = models.Product{
		ID:       "mens-classic-tee",
		Name:     "Classic Crew Neck Tee",
		Price:    2000,
		Category: models.CategoryMens,
		Sizes:    []models.Size{models.SizeM, models.SizeL},
		Colors:   []models.Color{{Name: "Red", Hex: "#ff0000"}},
		InStock:  true,
	}
	blouse = models.Product{
		ID:       "womens-silk-blouse",
		Name:     "Silk Blouse",
		Price:    8000,
		Category: models.CategoryWomens,
		Sizes:    []models.Size{models.SizeL},
		Colors:   []models.Color{{Name: "Blue", Hex: "#0000ff"}},
		InStock:  true,
	}
)

func addTee(quantity int) AddToCart {
	return AddToCart{Product: tee, Size: models.SizeM, Color: tee.Colors[0], Quantity: quantity}
}

func teeKey() models.VariantKey {
	return models.VariantKey{ProductID: tee.ID, Size: models.SizeM, ColorName: "Red"}
}

func TestReduceAddToCartMergesSameVariant(t *testing.T) {
	state := NewAppState()

	state = Reduce(state, addTee(1))
	state = Reduce(state, addTee(1))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 2, state.Cart[0].Quantity)
	assert.Equal(t, 2, state.CartItemCount())
}

func TestReduceAddToCartDifferentVariantsGetSeparateLines(t *testing.T) {
	state := NewAppState()

	state = Reduce(state, addTee(1))
	state = Reduce(state, AddToCart{Product: tee, Size: models.SizeL, Color: tee.Colors[0], Quantity: 1})

	assert.Len(t, state.Cart, 2)
}

func TestReduceAddToCartDefaultsQuantityToOne(t *testing.T) {
	state := Reduce(NewAppState(), addTee(0))

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 1, state.Cart[0].Quantity)
}

func TestReduceUpdateQuantity(t *testing.T) {
	state := Reduce(NewAppState(), addTee(1))

	state = Reduce(state, UpdateQuantity{Key: teeKey(), Quantity: 5})

	line, ok := state.CartLine(teeKey())
	require.True(t, ok)
	assert.Equal(t, 5, line.Quantity)
}

func TestReduceUpdateQuantityFloorRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		state := Reduce(NewAppState(), addTee(3))

		state = Reduce(state, UpdateQuantity{Key: teeKey(), Quantity: quantity})

		assert.Empty(t, state.Cart, "quantity %d must remove the line", quantity)
	}
}

func TestReduceRemoveAbsentLineIsNoOp(t *testing.T) {
	state := Reduce(NewAppState(), addTee(1))

	next := Reduce(state, RemoveFromCart{Key: models.VariantKey{ProductID: "nope", Size: models.SizeS, ColorName: "Blue"}})

	assert.Equal(t, state.Cart, next.Cart)
}

func TestReduceClearCart(t *testing.T) {
	state := Reduce(NewAppState(), addTee(2))
	state = Reduce(state, AddToCart{Product: blouse, Size: models.SizeL, Color: blouse.Colors[0], Quantity: 1})

	state = Reduce(state, ClearCart{})

	assert.Empty(t, state.Cart)
}

func TestReduceToggleWishlistIsAnInvolution(t *testing.T) {
	state := NewAppState()

	state = Reduce(state, ToggleWishlist{ProductID: tee.ID})
	assert.True(t, state.InWishlist(tee.ID))

	state = Reduce(state, ToggleWishlist{ProductID: tee.ID})
	assert.False(t, state.InWishlist(tee.ID))
	assert.Empty(t, state.Wishlist)
}

func TestReduceToggleWishlistPreservesOrder(t *testing.T) {
	state := NewAppState()

	state = Reduce(state, ToggleWishlist{ProductID: "p1"})
	state = Reduce(state, ToggleWishlist{ProductID: "p2"})
	state = Reduce(state, ToggleWishlist{ProductID: "p3"})
	state = Reduce(state, ToggleWishlist{ProductID: "p2"})

	assert.Equal(t, []string{"p1", "p3"}, state.Wishlist)
}

func TestReduceUpdateFiltersMergesPartialPatch(t *testing.T) {
	state := NewAppState()

	categories := []models.ProductCategory{models.CategoryMens}
	state = Reduce(state, UpdateFilters{Patch: models.FilterPatch{Categories: &categories}})

	inStock := false
	state = Reduce(state, UpdateFilters{Patch: models.FilterPatch{InStock: &inStock}})

	// The second patch must not clobber the first.
	assert.Equal(t, categories, state.Filters.Categories)
	assert.False(t, state.Filters.InStock)
	assert.Equal(t, [2]models.Cents{models.DefaultMinPrice, models.DefaultMaxPrice}, state.Filters.PriceRange)
}

func TestReduceSearchAndSort(t *testing.T) {
	state := NewAppState()

	state = Reduce(state, SetSearchQuery{Query: "linen"})
	state = Reduce(state, SetSortBy{SortBy: models.SortPriceLow})

	assert.Equal(t, "linen", state.SearchQuery)
	assert.Equal(t, models.SortPriceLow, state.SortBy)
}

func TestReduceDoesNotMutatePreviousState(t *testing.T) {
	first := Reduce(NewAppState(), addTee(1))

	second := Reduce(first, addTee(4))
	third := Reduce(second, UpdateQuantity{Key: teeKey(), Quantity: 9})

	// Earlier snapshots keep their values after later transitions.
	assert.Equal(t, 1, first.Cart[0].Quantity)
	assert.Equal(t, 5, second.Cart[0].Quantity)
	assert.Equal(t, 9, third.Cart[0].Quantity)
}
