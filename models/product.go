package models

// ═══════════════════════════════════════════════════════════
// Catalog entry types
// ═══════════════════════════════════════════════════════════

// ProductCategory is the fixed top-level category set.
type ProductCategory string

const (
	CategoryMens        ProductCategory = "mens"
	CategoryWomens      ProductCategory = "womens"
	CategoryAccessories ProductCategory = "accessories"
)

// ProductCategories lists every valid category, in display order.
var ProductCategories = []ProductCategory{CategoryMens, CategoryWomens, CategoryAccessories}

func (c ProductCategory) Valid() bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Size is one step of the fixed size scale.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// SizeScale lists every valid size, smallest first.
var SizeScale = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

func (s Size) Valid() bool {
	for _, known := range SizeScale {
		if s == known {
			return true
		}
	}
	return false
}

// Color is a product colourway. Name is unique within a product.
type Color struct {
	Name string `json:"name" binding:"required"`
	Hex  string `json:"hex" binding:"required"`
}

// Product is an immutable catalog entry. Loaded once at startup and never
// mutated afterwards.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         Cents           `json:"price_cents"`
	OriginalPrice *Cents          `json:"original_price_cents,omitempty"`
	Category      ProductCategory `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Images        []string        `json:"images"`
	Sizes         []Size          `json:"sizes"`
	Colors        []Color         `json:"colors"`
	InStock       bool            `json:"in_stock"`
	IsNew         bool            `json:"is_new,omitempty"`
	IsPopular     bool            `json:"is_popular,omitempty"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	Tags          []string        `json:"tags"`
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(s Size) bool {
	for _, offered := range p.Sizes {
		if offered == s {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in a colour with the
// given name.
func (p Product) HasColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ColorByName returns the colourway with the given name.
func (p Product) ColorByName(name string) (Color, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// DiscountPercent returns the rounded discount against the original price,
// or 0 when the product is not on sale.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil {
		return 0
	}
	return DiscountPercent(*p.OriginalPrice, p.Price)
}

// ═══════════════════════════════════════════════════════════
// Response models
// ═══════════════════════════════════════════════════════════

// StorefrontProductResponse is the thin product card for list views.
type StorefrontProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Price           Cents           `json:"price_cents"`
	PriceDisplay    string          `json:"price_display"`
	OriginalPrice   *Cents          `json:"original_price_cents,omitempty"`
	DiscountPercent int             `json:"discount_percent,omitempty"`
	Category        ProductCategory `json:"category"`
	Subcategory     string          `json:"subcategory"`
	InStock         bool            `json:"in_stock"`
	IsNew           bool            `json:"is_new,omitempty"`
	IsPopular       bool            `json:"is_popular,omitempty"`
	Rating          float64         `json:"rating"`
	ReviewCount     int             `json:"review_count"`
}

// ToStorefrontResponse projects a catalog entry onto the list card shape.
func (p Product) ToStorefrontResponse() StorefrontProductResponse {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return StorefrontProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Image:           image,
		Price:           p.Price,
		PriceDisplay:    p.Price.Format(),
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		InStock:         p.InStock,
		IsNew:           p.IsNew,
		IsPopular:       p.IsPopular,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
	}
}
