package sale

import "errors"

// Sale domain errors
var (
	ErrSaleNotFound       = errors.New("sale record not found")
	ErrNegativeQuantity   = errors.New("sale quantity cannot be negative")
	ErrReadingMismatch    = errors.New("closing reading must not be less than opening reading")
	ErrInvalidFuelType    = errors.New("invalid fuel type")
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrInvalidShift       = errors.New("invalid shift")
	ErrUnauthorized       = errors.New("unauthorized to access this sale record")
)
