package stock

import "errors"

// Stock domain errors
var (
	ErrStockNotFound    = errors.New("stock record not found")
	ErrTankNotFound     = errors.New("tank not found")
	ErrExceedsCapacity  = errors.New("received fuel would exceed tank capacity")
	ErrNegativeLevel    = errors.New("stock level cannot be negative")
	ErrFuelTypeMismatch = errors.New("fuel type does not match the tank")
	ErrUnauthorized     = errors.New("unauthorized to access this stock record")
)
