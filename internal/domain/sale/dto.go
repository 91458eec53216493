package sale

import (
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
)

type CreateSaleRequest struct {
	StaffID        string  `json:"-"`
	Date           string  `json:"date"`
	Shift          string  `json:"shift,omitempty"`
	FuelType       string  `json:"fuel_type"`
	NozzleID       string  `json:"nozzle_id"`
	OpeningReading float64 `json:"opening_reading"`
	ClosingReading float64 `json:"closing_reading"`
	Rate           float64 `json:"rate"`
	PaymentMode    string  `json:"payment_mode"`
	CustomerID     *string `json:"customer_id,omitempty"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// Shift is optional; the service buckets it from the local hour when
	// absent.
	if r.Shift != "" && !validator.IsInSlice(r.Shift, []string{ShiftMorning, ShiftEvening, ShiftNight}) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be morning, evening, or night",
		})
	}

	if !validator.IsInSlice(r.FuelType, []string{FuelPetrol, FuelDiesel, FuelPremium}) {
		errs = append(errs, validator.ValidationError{
			Field:   "fuel_type",
			Message: "fuel_type must be Petrol, Diesel, or Premium",
		})
	}

	if !validator.IsInSlice(r.PaymentMode, []string{PaymentCash, PaymentCard, PaymentUPI}) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_mode",
			Message: "payment_mode must be cash, card, or upi",
		})
	}

	if validator.IsEmpty(r.NozzleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "nozzle_id",
			Message: "nozzle_id is required",
		})
	}

	if r.OpeningReading < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "opening_reading",
			Message: "opening_reading cannot be negative",
		})
	}

	if r.ClosingReading < r.OpeningReading {
		errs = append(errs, validator.ValidationError{
			Field:   "closing_reading",
			Message: "closing_reading must not be less than opening_reading",
		})
	}

	if r.Rate <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	StaffID  string `json:"staff_id"`
	FuelType string `json:"fuel_type"`
	Shift    string `json:"shift"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}

type SaleResponse struct {
	ID             string    `json:"id"`
	StaffID        string    `json:"staff_id"`
	StaffName      *string   `json:"staff_name,omitempty"`
	Date           string    `json:"date"`
	Shift          string    `json:"shift"`
	FuelType       string    `json:"fuel_type"`
	NozzleID       string    `json:"nozzle_id"`
	OpeningReading float64   `json:"opening_reading"`
	ClosingReading float64   `json:"closing_reading"`
	Quantity       float64   `json:"quantity"`
	Rate           float64   `json:"rate"`
	Amount         float64   `json:"amount"`
	PaymentMode    string    `json:"payment_mode"`
	CustomerID     *string   `json:"customer_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListSalesResponse struct {
	Sales   []SaleResponse `json:"sales"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

func ToResponse(s Sale) SaleResponse {
	return SaleResponse{
		ID:             s.ID,
		StaffID:        s.StaffID,
		StaffName:      s.StaffName,
		Date:           s.Date.Format("2006-01-02"),
		Shift:          s.Shift,
		FuelType:       s.FuelType,
		NozzleID:       s.NozzleID,
		OpeningReading: s.OpeningReading,
		ClosingReading: s.ClosingReading,
		Quantity:       s.Quantity,
		Rate:           s.Rate,
		Amount:         s.Amount,
		PaymentMode:    s.PaymentMode,
		CustomerID:     s.CustomerID,
		CreatedAt:      s.CreatedAt,
	}
}
