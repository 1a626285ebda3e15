package store

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// Reduce produces the next state from the current state and a command. The
// input state is left untouched; slices are copied before modification so
// callers may hold on to old snapshots.
func Reduce(state AppState, cmd Command) AppState {
	switch cmd := cmd.(type) {
	case AddToCart:
		quantity := cmd.Quantity
		if quantity == 0 {
			quantity = 1
		}
		key := models.VariantKey{
			ProductID: cmd.Product.ID,
			Size:      cmd.Size,
			ColorName: cmd.Color.Name,
		}

		cart := copyCart(state.Cart)
		for i, item := range cart {
			if item.Key() == key {
				cart[i].Quantity += quantity
				state.Cart = cart
				return state
			}
		}

		state.Cart = append(cart, models.CartItem{
			Product:  cmd.Product,
			Size:     cmd.Size,
			Color:    cmd.Color,
			Quantity: quantity,
		})
		return state

	case RemoveFromCart:
		state.Cart = removeLine(state.Cart, cmd.Key)
		return state

	case UpdateQuantity:
		if cmd.Quantity <= 0 {
			state.Cart = removeLine(state.Cart, cmd.Key)
			return state
		}

		cart := copyCart(state.Cart)
		for i, item := range cart {
			if item.Key() == cmd.Key {
				cart[i].Quantity = cmd.Quantity
				break
			}
		}
		state.Cart = cart
		return state

	case ClearCart:
		state.Cart = []models.CartItem{}
		return state

	case ToggleWishlist:
		if state.InWishlist(cmd.ProductID) {
			wishlist := make([]string, 0, len(state.Wishlist)-1)
			for _, id := range state.Wishlist {
				if id != cmd.ProductID {
					wishlist = append(wishlist, id)
				}
			}
			state.Wishlist = wishlist
			return state
		}

		wishlist := make([]string, 0, len(state.Wishlist)+1)
		wishlist = append(wishlist, state.Wishlist...)
		state.Wishlist = append(wishlist, cmd.ProductID)
		return state

	case UpdateFilters:
		filters := state.Filters
		if cmd.Patch.Categories != nil {
			filters.Categories = *cmd.Patch.Categories
		}
		if cmd.Patch.Sizes != nil {
			filters.Sizes = *cmd.Patch.Sizes
		}
		if cmd.Patch.Colors != nil {
			filters.Colors = *cmd.Patch.Colors
		}
		if cmd.Patch.PriceRange != nil {
			filters.PriceRange = *cmd.Patch.PriceRange
		}
		if cmd.Patch.InStock != nil {
			filters.InStock = *cmd.Patch.InStock
		}
		state.Filters = filters
		return state

	case SetSearchQuery:
		state.SearchQuery = cmd.Query
		return state

	case SetSortBy:
		state.SortBy = cmd.SortBy
		return state
	}

	return state
}

func copyCart(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}

func removeLine(cart []models.CartItem, key models.VariantKey) []models.CartItem {
	out := make([]models.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Key() != key {
			out = append(out, item)
		}
	}
	return out
}
