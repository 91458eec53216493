package sale

import (
	"time"
)

// Fuel types sold at the station.
const (
	FuelPetrol  = "Petrol"
	FuelDiesel  = "Diesel"
	FuelPremium = "Premium"
)

// Payment modes accepted at the pump.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// Shifts a sale is bucketed into.
const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftNight   = "night"
)

type Sale struct {
	ID             string
	AdminID        string
	StaffID        string
	Date           time.Time
	Shift          string
	FuelType       string
	NozzleID       string
	OpeningReading float64
	ClosingReading float64
	Quantity       float64
	Rate           float64
	Amount         float64
	PaymentMode    string
	CustomerID     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	StaffName *string
}
