package cart_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/StyleHub-Commerce/stylehub-storefront-backend/models"
	"github.com/StyleHub-Commerce/stylehub-storefront-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// DownloadCartReceiptPDF godoc
// @Summary Download an order summary PDF
// @Description Generate and download an order summary PDF for the current cart.
// @Tags Storefront - Cart
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /cart/receipt [get]
func DownloadCartReceiptPDF(c *gin.Context) {
	s, ok := sessionStore(c)
	if !ok {
		return
	}

	state := s.State()
	if len(state.Cart) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	summary := store.Summarize(state, pricing)

	pdfBuffer, err := generateCartReceiptPDF(state.Cart, summary)
	if err != nil {
		log.Printf("[cart.receipt] failed to generate PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	filename := fmt.Sprintf("order-summary-%s.pdf", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

// generateCartReceiptPDF creates an order summary PDF for the cart
func generateCartReceiptPDF(items []models.CartItem, summary models.CartSummary) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDER SUMMARY", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	// Store info
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("STYLEHUB", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Date: %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Items table header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Item", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	// Items
	for _, item := range items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(fmt.Sprintf("%s (%s / %s)", item.Product.Name, item.Size, item.Color.Name), props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(item.Product.Price.Format(), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(item.LineTotal().Format(), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Totals
	totals := []struct {
		label string
		value string
	}{
		{"Subtotal", summary.SubtotalDisplay},
		{"Shipping", summary.ShippingDisplay},
		{"Tax", summary.TaxDisplay},
		{"Total", summary.TotalDisplay},
	}
	for _, line := range totals {
		line := line
		m.Row(5, func() {
			m.Col(10, func() {
				m.Text(line.label, props.Text{
					Size:  9,
					Style: consts.Bold,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(line.value, props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
