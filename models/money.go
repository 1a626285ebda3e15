package models

import (
	"fmt"
	"math"
	"strconv"
)

// Cents is a monetary amount in minor units (US cents). All arithmetic in
// the storefront happens on this fixed-point representation; floating point
// is used only for the tax rate multiplication, which rounds back to cents
// immediately.
type Cents int64

// Format renders the amount as a display string like "$1,234.56". Negative
// amounts render as "-$12.34".
func (c Cents) Format() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}

	dollars := int64(c) / 100
	cents := int64(c) % 100

	whole := strconv.FormatInt(dollars, 10)
	var grouped []byte
	for i, digit := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digit)
	}

	return fmt.Sprintf("%s$%s.%02d", sign, grouped, cents)
}

// DiscountPercent returns the rounded percentage discount of current against
// original. Returns 0 unless original is strictly greater than current and
// positive.
func DiscountPercent(original, current Cents) int {
	if original <= 0 || original <= current {
		return 0
	}
	return int(math.Round(float64(original-current) / float64(original) * 100))
}
