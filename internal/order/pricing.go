package order

import (
	"fmt"
	"strconv"
	"strings"

	"deliverus-client/internal/restaurant"

	"github.com/shopspring/decimal"
)

// ParseQuantity turns raw user input into a non-negative quantity. An empty
// field counts as zero (the input placeholder); anything that is not a
// non-negative integer is rejected so a bad edit can never corrupt the
// previous valid quantity.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	if qty < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeQuantity, qty)
	}
	return qty, nil
}

// Quantities is the per-menu quantity vector, index-aligned with the menu.
type Quantities []int

func NewQuantities(menuSize int) Quantities {
	return make(Quantities, menuSize)
}

func (q Quantities) Set(index, qty int) error {
	if index < 0 || index >= len(q) {
		return ErrIndexOutOfRange
	}
	if qty < 0 {
		return ErrNegativeQuantity
	}
	q[index] = qty
	return nil
}

// Any reports whether at least one product has a positive quantity.
func (q Quantities) Any() bool {
	for _, qty := range q {
		if qty > 0 {
			return true
		}
	}
	return false
}

// PriceLines derives one line per product with quantity > 0, in menu order.
// Pure: call it again after any quantity change, never keep its output.
func PriceLines(menu []restaurant.Product, quantities Quantities) []Line {
	lines := make([]Line, 0, len(menu))
	for i, product := range menu {
		if i >= len(quantities) || quantities[i] <= 0 {
			continue
		}
		qty := quantities[i]
		lines = append(lines, Line{
			Product:   product,
			Quantity:  qty,
			LinePrice: product.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return lines
}

// Subtotal sums the line prices.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LinePrice)
	}
	return total
}

// Total is the subtotal plus the restaurant's flat shipping cost.
func Total(subtotal, shippingCosts decimal.Decimal) decimal.Decimal {
	return subtotal.Add(shippingCosts)
}
