package order

import "errors"

var (
	// -- Input boundary --
	ErrInvalidQuantity  = errors.New("quantity is not a valid integer")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrIndexOutOfRange  = errors.New("product index out of range")

	// -- Draft building & validation --
	ErrEmptyOrder       = errors.New("order has no products selected")
	ErrValidationFailed = errors.New("order draft failed validation")

	// -- Submission flow --
	ErrNoDraft        = errors.New("no draft to submit")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrFlowFinished   = errors.New("checkout flow already finished")

	// -- Resource state --
	ErrOrderNotFound = errors.New("order not found")
)
