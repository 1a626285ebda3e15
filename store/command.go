package store

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// Command is the closed set of state transitions. Each variant carries its
// own payload and is handled exhaustively by Reduce.
type Command interface {
	isCommand()
}

// AddToCart inserts a quantity of one product variant. An existing line
// with the same variant identity has its quantity incremented instead of a
// duplicate line being appended.
type AddToCart struct {
	Product  models.Product
	Size     models.Size
	Color    models.Color
	Quantity int
}

// RemoveFromCart deletes the line matching the variant triple. Removing an
// absent line is a no-op, not an error.
type RemoveFromCart struct {
	Key models.VariantKey
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line.
type UpdateQuantity struct {
	Key      models.VariantKey
	Quantity int
}

// ClearCart empties the cart unconditionally.
type ClearCart struct{}

// ToggleWishlist flips wishlist membership for a product. Applying it twice
// restores the original state.
type ToggleWishlist struct {
	ProductID string
}

// UpdateFilters merges a partial filter update into the current filters.
type UpdateFilters struct {
	Patch models.FilterPatch
}

// SetSearchQuery replaces the current search text.
type SetSearchQuery struct {
	Query string
}

// SetSortBy replaces the current sort option.
type SetSortBy struct {
	SortBy models.SortOption
}

func (AddToCart) isCommand()      {}
func (RemoveFromCart) isCommand() {}
func (UpdateQuantity) isCommand() {}
func (ClearCart) isCommand()      {}
func (ToggleWishlist) isCommand() {}
func (UpdateFilters) isCommand()  {}
func (SetSearchQuery) isCommand() {}
func (SetSortBy) isCommand()      {}
