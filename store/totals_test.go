package store

import (
	"testing"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeFreeShippingOrder(t *testing.T) {
	// Two tees at $20.00 plus one blouse at $80.00: subtotal $120.00 clears
	// the $50.00 free-shipping threshold, 8% tax lands on $9.60.
	state := NewAppState()
	state = Reduce(state, addTee(2))
	state = Reduce(state, AddToCart{Product: blouse, Size: models.SizeL, Color: blouse.Colors[0], Quantity: 1})

	summary := Summarize(state, DefaultPricing())

	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, models.Cents(12000), summary.Subtotal)
	assert.Equal(t, models.Cents(0), summary.Shipping)
	assert.Equal(t, models.Cents(960), summary.Tax)
	assert.Equal(t, models.Cents(12960), summary.Total)
	assert.Equal(t, "$120.00", summary.SubtotalDisplay)
	assert.Equal(t, "$129.60", summary.TotalDisplay)
}

func TestSummarizeBelowThresholdChargesFlatShipping(t *testing.T) {
	state := Reduce(NewAppState(), addTee(1))

	summary := Summarize(state, DefaultPricing())

	assert.Equal(t, models.Cents(2000), summary.Subtotal)
	assert.Equal(t, models.Cents(999), summary.Shipping)
	assert.Equal(t, models.Cents(160), summary.Tax)
	assert.Equal(t, models.Cents(3159), summary.Total)
}

func TestSummarizeAtExactThresholdShipsFree(t *testing.T) {
	state := Reduce(NewAppState(), AddToCart{
		Product: models.Product{ID: "p", Price: 5000},
		Size:    models.SizeM, Color: models.Color{Name: "Red"}, Quantity: 1,
	})

	summary := Summarize(state, DefaultPricing())

	assert.Equal(t, models.Cents(0), summary.Shipping)
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := Summarize(NewAppState(), DefaultPricing())

	assert.Equal(t, 0, summary.ItemCount)
	assert.Equal(t, models.Cents(0), summary.Subtotal)
	assert.Equal(t, models.Cents(999), summary.Shipping)
	assert.Equal(t, models.Cents(0), summary.Tax)
	assert.Equal(t, models.Cents(999), summary.Total)
}

func TestSummarizeRoundsTaxToNearestCent(t *testing.T) {
	// 1111 * 0.08 = 88.88 → 89 cents.
	state := Reduce(NewAppState(), AddToCart{
		Product: models.Product{ID: "p", Price: 1111},
		Size:    models.SizeM, Color: models.Color{Name: "Red"}, Quantity: 1,
	})

	summary := Summarize(state, DefaultPricing())

	assert.Equal(t, models.Cents(89), summary.Tax)
}
