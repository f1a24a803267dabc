package order

import (
	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAddressLen is the backend's limit on the delivery address.
const MaxAddressLen = 75

// BuildDraft assembles a submittable draft from the checkout selection.
// Fails with ErrEmptyOrder when no product has a positive quantity, so a
// degenerate order can never reach the submission flow.
func BuildDraft(
	menu []restaurant.Product,
	quantities Quantities,
	restaurantID uint,
	address string,
	shippingCosts decimal.Decimal,
) (*Draft, error) {

	lines := PriceLines(menu, quantities)
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	subtotal := Subtotal(lines)

	return &Draft{
		ID:            uuid.New(),
		RestaurantID:  restaurantID,
		Address:       address,
		Lines:         lines,
		Subtotal:      subtotal,
		ShippingCosts: shippingCosts,
		Total:         Total(subtotal, shippingCosts),
	}, nil
}

// Validate applies the client-side rules before any network call. Messages
// use the backend's field-error shape so both sources surface identically.
func (d *Draft) Validate() []httpapi.FieldError {
	var errs []httpapi.FieldError

	if d.Address == "" {
		errs = append(errs, httpapi.FieldError{Msg: "Address is required."})
	} else if len(d.Address) > MaxAddressLen {
		errs = append(errs, httpapi.FieldError{Msg: "Address must be at most 75 characters."})
	}

	if d.RestaurantID == 0 {
		errs = append(errs, httpapi.FieldError{Msg: "Restaurant is required."})
	}

	if len(d.Lines) == 0 {
		errs = append(errs, httpapi.FieldError{Msg: "Select at least one product."})
	}
	for _, line := range d.Lines {
		if line.Quantity <= 0 {
			errs = append(errs, httpapi.FieldError{Msg: "Quantity must be a positive integer."})
			break
		}
	}

	return errs
}
