// models/filters.go
package models

// Default price range bounds in cents ($0 – $500).
const (
	DefaultMinPrice Cents = 0
	DefaultMaxPrice Cents = 50000
)

// FilterState is the storefront query configuration. An empty selection
// means "no restriction" for that criterion.
type FilterState struct {
	Categories []ProductCategory `json:"categories"`
	Sizes      []Size            `json:"sizes"`
	Colors     []string          `json:"colors"`
	PriceRange [2]Cents          `json:"price_range"`
	InStock    bool              `json:"in_stock"`
}

// DefaultFilterState returns the storefront defaults: no category, size or
// colour restriction, full price range, in-stock only.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []ProductCategory{},
		Sizes:      []Size{},
		Colors:     []string{},
		PriceRange: [2]Cents{DefaultMinPrice, DefaultMaxPrice},
		InStock:    true,
	}
}

// FilterPatch is a partial FilterState update. Nil fields keep the current
// value.
type FilterPatch struct {
	Categories *[]ProductCategory `json:"categories"`
	Sizes      *[]Size            `json:"sizes"`
	Colors     *[]string          `json:"colors"`
	PriceRange *[2]Cents          `json:"price_range"`
	InStock    *bool              `json:"in_stock"`
}

// SortOption orders a product listing. Ordering only, never membership.
type SortOption string

const (
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNewest    SortOption = "newest"
	SortPopular   SortOption = "popular"
	SortRating    SortOption = "rating"
)

// ParseSortOption maps a query value onto a known sort option, falling back
// to the storefront default.
func ParseSortOption(value string) SortOption {
	switch SortOption(value) {
	case SortPriceLow, SortPriceHigh, SortNewest, SortPopular, SortRating:
		return SortOption(value)
	default:
		return SortPopular
	}
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (storefront filter UI)
// ═══════════════════════════════════════════════════════════

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []FilterOption    `json:"categories"`
	Sizes        []FilterOption    `json:"sizes"`
	Colors       []FilterOption    `json:"colors"`
	PriceRange   *PriceRange       `json:"price_range"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// FilterOption represents a single filter option
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRange represents the minimum and maximum price in the catalog
type PriceRange struct {
	Min Cents `json:"min"`
	Max Cents `json:"max"`
}
