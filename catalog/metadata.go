package catalog

import (
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Distinct-value projections (filter UI population)
// ─────────────────────────────────────────────────────────────

// UniqueCategories returns the distinct categories present in the
// collection, first-seen order.
func UniqueCategories(products []models.Product) []models.ProductCategory {
	seen := make(map[models.ProductCategory]bool)
	out := make([]models.ProductCategory, 0)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// UniqueSizes returns the distinct sizes offered across the collection,
// first-seen order.
func UniqueSizes(products []models.Product) []models.Size {
	seen := make(map[models.Size]bool)
	out := make([]models.Size, 0)
	for _, p := range products {
		for _, s := range p.Sizes {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// UniqueColors returns the distinct colour names offered across the
// collection, first-seen order.
func UniqueColors(products []models.Product) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range products {
		for _, c := range p.Colors {
			if !seen[c.Name] {
				seen[c.Name] = true
				out = append(out, c.Name)
			}
		}
	}
	return out
}

// UniqueSubcategories returns the distinct subcategories, optionally scoped
// to one category (empty category means all products).
func UniqueSubcategories(products []models.Product, category models.ProductCategory) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if !seen[p.Subcategory] {
			seen[p.Subcategory] = true
			out = append(out, p.Subcategory)
		}
	}
	return out
}

// PriceSpan returns the minimum and maximum sale price across the
// collection. An empty collection yields the default storefront range.
func PriceSpan(products []models.Product) models.PriceRange {
	if len(products) == 0 {
		return models.PriceRange{Min: models.DefaultMinPrice, Max: models.DefaultMaxPrice}
	}

	span := models.PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < span.Min {
			span.Min = p.Price
		}
		if p.Price > span.Max {
			span.Max = p.Price
		}
	}
	return span
}

// ─────────────────────────────────────────────────────────────
// Filter metadata
// ─────────────────────────────────────────────────────────────

// BuildFilterMetadata assembles availability counts, per-option product
// counts and the price span for the storefront filter panel.
func BuildFilterMetadata(products []models.Product) models.FilterMetadata {
	availability := &models.AvailabilityData{}
	for _, p := range products {
		if p.InStock {
			availability.InStock++
		} else {
			availability.OutOfStock++
		}
	}

	categories := make([]models.FilterOption, 0)
	for _, cat := range UniqueCategories(products) {
		count := 0
		for _, p := range products {
			if p.Category == cat {
				count++
			}
		}
		categories = append(categories, models.FilterOption{
			Label: string(cat),
			Value: string(cat),
			Count: count,
		})
	}

	sizes := make([]models.FilterOption, 0)
	for _, size := range UniqueSizes(products) {
		count := 0
		for _, p := range products {
			if p.HasSize(size) {
				count++
			}
		}
		sizes = append(sizes, models.FilterOption{
			Label: string(size),
			Value: string(size),
			Count: count,
		})
	}

	colors := make([]models.FilterOption, 0)
	for _, name := range UniqueColors(products) {
		count := 0
		for _, p := range products {
			if p.HasColor(name) {
				count++
			}
		}
		colors = append(colors, models.FilterOption{
			Label: name,
			Value: name,
			Count: count,
		})
	}

	span := PriceSpan(products)

	return models.FilterMetadata{
		Availability: availability,
		Categories:   categories,
		Sizes:        sizes,
		Colors:       colors,
		PriceRange:   &span,
	}
}
