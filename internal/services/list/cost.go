package list

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/basket/internal/models"
)

// Cost is an exact monetary amount.
type Cost = decimal.Decimal

// Bounds on what counts as a price. Anything outside them is treated as
// unparsable, so a typo like "1e900000000" cannot blow up the total.
const (
	maxPriceLen   = 40
	maxPriceScale = 20
)

// ParsePrice reads a free-text price. Anything that is not a number, or is
// absurdly large or precise, counts as zero.
func ParsePrice(price string) Cost {
	price = strings.TrimSpace(price)
	if len(price) > maxPriceLen {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxPriceScale || exp < -maxPriceScale {
		return decimal.Zero
	}
	return d
}

// TotalCost sums the prices of items, done or not.
func TotalCost(items []models.Item) Cost {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ParsePrice(item.Price))
	}
	return total
}

// FormatCost renders c with exactly two decimals, rounding half away from zero.
func FormatCost(c Cost) string {
	return c.StringFixed(2)
}
