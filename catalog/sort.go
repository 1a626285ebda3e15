package catalog

import (
	"sort"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// SortProducts returns a new ordered slice; the input order is undisturbed.
// Every option sorts stably, so equal keys keep their relative input order.
func SortProducts(products []models.Product, sortBy models.SortOption) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})

	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})

	case models.SortNewest:
		// Stable partition: new items first. There is no creation date on a
		// catalog entry, so equal new-ness keeps input order.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsNew && !sorted[j].IsNew
		})

	case models.SortPopular:
		// Popular items first, then by descending review count.
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].IsPopular != sorted[j].IsPopular {
				return sorted[i].IsPopular
			}
			return sorted[i].ReviewCount > sorted[j].ReviewCount
		})

	case models.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}
