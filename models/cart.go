package models

// VariantKey is the composite identity of a cart line: one product in one
// size and one colourway. Structural equality makes it usable as a map key.
type VariantKey struct {
	ProductID string `json:"product_id"`
	Size      Size   `json:"size"`
	ColorName string `json:"color_name"`
}

// CartItem is one cart line: a quantity of a single product variant.
// Quantity is always positive; a line that would drop to zero is removed
// instead.
type CartItem struct {
	Product  Product `json:"product"`
	Size     Size    `json:"size"`
	Color    Color   `json:"color"`
	Quantity int     `json:"quantity"`
}

// Key returns the line's composite variant identity.
func (i CartItem) Key() VariantKey {
	return VariantKey{ProductID: i.Product.ID, Size: i.Size, ColorName: i.Color.Name}
}

// LineTotal is the line's sale price times its quantity.
func (i CartItem) LineTotal() Cents {
	return i.Product.Price * Cents(i.Quantity)
}

// CartSummary carries the derived order totals for a cart.
type CartSummary struct {
	ItemCount       int    `json:"item_count"`
	Subtotal        Cents  `json:"subtotal_cents"`
	Shipping        Cents  `json:"shipping_cents"`
	Tax             Cents  `json:"tax_cents"`
	Total           Cents  `json:"total_cents"`
	SubtotalDisplay string `json:"subtotal_display"`
	ShippingDisplay string `json:"shipping_display"`
	TaxDisplay      string `json:"tax_display"`
	TotalDisplay    string `json:"total_display"`
}

// ═══════════════════════════════════════════════════════════
// Request models
// ═══════════════════════════════════════════════════════════

// AddCartItemRequest adds a quantity of one product variant to the cart.
// Quantity defaults to 1 when omitted.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      Size   `json:"size" binding:"required"`
	ColorName string `json:"color_name" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty"`
}

// UpdateCartItemRequest replaces a line's quantity. A quantity of zero or
// less removes the line.
type UpdateCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      Size   `json:"size" binding:"required"`
	ColorName string `json:"color_name" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemRequest deletes the line matching the variant triple.
type RemoveCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      Size   `json:"size" binding:"required"`
	ColorName string `json:"color_name" binding:"required"`
}

// ═══════════════════════════════════════════════════════════
// Response models
// ═══════════════════════════════════════════════════════════

// CartItemResponse is one rendered cart line.
type CartItemResponse struct {
	ProductID        string          `json:"product_id"`
	Name             string          `json:"name"`
	Image            string          `json:"image"`
	Category         ProductCategory `json:"category"`
	Subcategory      string          `json:"subcategory"`
	Size             Size            `json:"size"`
	Color            Color           `json:"color"`
	Quantity         int             `json:"quantity"`
	UnitPrice        Cents           `json:"unit_price_cents"`
	UnitPriceDisplay string          `json:"unit_price_display"`
	LineTotal        Cents           `json:"line_total_cents"`
	LineTotalDisplay string          `json:"line_total_display"`
}

// CartResponse is the full cart payload: lines plus derived totals.
type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Summary CartSummary        `json:"summary"`
}

// ToCartItemResponse projects a cart line onto its response shape.
func (i CartItem) ToCartItemResponse() CartItemResponse {
	image := ""
	if len(i.Product.Images) > 0 {
		image = i.Product.Images[0]
	}
	return CartItemResponse{
		ProductID:        i.Product.ID,
		Name:             i.Product.Name,
		Image:            image,
		Category:         i.Product.Category,
		Subcategory:      i.Product.Subcategory,
		Size:             i.Size,
		Color:            i.Color,
		Quantity:         i.Quantity,
		UnitPrice:        i.Product.Price,
		UnitPriceDisplay: i.Product.Price.Format(),
		LineTotal:        i.LineTotal(),
		LineTotalDisplay: i.LineTotal().Format(),
	}
}
