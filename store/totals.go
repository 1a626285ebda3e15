package store

import (
	"math"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
)

// PricingConfig holds the order-total knobs. Amounts are minor units.
type PricingConfig struct {
	FreeShippingThreshold models.Cents
	ShippingFlat          models.Cents
	TaxRate               float64
}

// DefaultPricing mirrors the storefront defaults: free shipping from $50,
// $9.99 flat fee below that, 8% flat tax.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: 5000,
		ShippingFlat:          999,
		TaxRate:               0.08,
	}
}

// Summarize computes the derived order totals for the current cart. Tax is
// rounded to the nearest cent; no other rounding happens anywhere.
func Summarize(state AppState, pricing PricingConfig) models.CartSummary {
	subtotal := state.CartSubtotal()

	shipping := pricing.ShippingFlat
	if subtotal >= pricing.FreeShippingThreshold {
		shipping = 0
	}

	tax := models.Cents(math.Round(float64(subtotal) * pricing.TaxRate))
	total := subtotal + shipping + tax

	return models.CartSummary{
		ItemCount:       state.CartItemCount(),
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           total,
		SubtotalDisplay: subtotal.Format(),
		ShippingDisplay: shipping.Format(),
		TaxDisplay:      tax.Format(),
		TotalDisplay:    total.Format(),
	}
}
