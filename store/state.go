// Package store owns the per-session storefront state: the shopping cart,
// the wishlist and the current filter/sort configuration. Every transition
// is a pure function from the previous state and a command to a new state;
// previously returned states are never mutated.
package store

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// AppState is one session's complete storefront state.
type AppState struct {
	Cart        []models.CartItem
	Wishlist    []string
	Filters     models.FilterState
	SearchQuery string
	SortBy      models.SortOption
}

// NewAppState returns the initial session state: empty cart and wishlist,
// default filters, popularity sort.
func NewAppState() AppState {
	return AppState{
		Cart:        []models.CartItem{},
		Wishlist:    []string{},
		Filters:     models.DefaultFilterState(),
		SearchQuery: "",
		SortBy:      models.SortPopular,
	}
}

// CartItemCount is the sum of quantities across all cart lines.
func (s AppState) CartItemCount() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Quantity
	}
	return total
}

// CartSubtotal is the sum of line totals at current sale prices.
func (s AppState) CartSubtotal() models.Cents {
	var total models.Cents
	for _, item := range s.Cart {
		total += item.LineTotal()
	}
	return total
}

// InWishlist reports wishlist membership for a product.
func (s AppState) InWishlist(productID string) bool {
	for _, id := range s.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// CartLine returns the cart line with the given variant identity.
func (s AppState) CartLine(key models.VariantKey) (models.CartItem, bool) {
	for _, item := range s.Cart {
		if item.Key() == key {
			return item, true
		}
	}
	return models.CartItem{}, false
}
