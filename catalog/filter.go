// Package catalog implements the storefront query engine: conjunctive
// filtering and stable sorting over the in-memory product collection, plus
// the projections that feed the filter UI.
package catalog

import (
	"strings"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// FilterProducts narrows products by every active criterion, applied as a
// conjunction. A criterion at its empty/default value is a no-op. The price
// range is always applied as a closed interval on the sale price; a range
// with min > max therefore matches nothing.
func FilterProducts(products []models.Product, filters models.FilterState, searchQuery string) []models.Product {
	filtered := products

	// Search query filter: evaluated first, usually the most selective.
	if query := strings.ToLower(strings.TrimSpace(searchQuery)); query != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return matchesQuery(p, query)
		})
	}

	// Category filter
	if len(filters.Categories) > 0 {
		filtered = keep(filtered, func(p models.Product) bool {
			for _, cat := range filters.Categories {
				if p.Category == cat {
					return true
				}
			}
			return false
		})
	}

	// Size filter: product passes if it offers at least one selected size.
	if len(filters.Sizes) > 0 {
		filtered = keep(filtered, func(p models.Product) bool {
			for _, size := range filters.Sizes {
				if p.HasSize(size) {
					return true
				}
			}
			return false
		})
	}

	// Color filter: product passes if it offers at least one selected colour.
	if len(filters.Colors) > 0 {
		filtered = keep(filtered, func(p models.Product) bool {
			for _, name := range filters.Colors {
				if p.HasColor(name) {
					return true
				}
			}
			return false
		})
	}

	// Price range filter (always applied, sale price)
	filtered = keep(filtered, func(p models.Product) bool {
		return p.Price >= filters.PriceRange[0] && p.Price <= filters.PriceRange[1]
	})

	// In stock filter
	if filters.InStock {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.InStock
		})
	}

	return filtered
}

// matchesQuery does case-insensitive substring containment against name,
// description, category, subcategory and tags. No tokenization or ranking.
func matchesQuery(p models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(string(p.Category)), query) ||
		strings.Contains(strings.ToLower(p.Subcategory), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// keep returns the products satisfying pred, preserving input order. The
// input slice is never modified.
func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
