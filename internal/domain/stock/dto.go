package stock

import (
	"time"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/sale"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
)

type CreateStockRequest struct {
	RecordedBy     string  `json:"-"`
	TankID         string  `json:"tank_id"`
	Date           string  `json:"date"`
	ReceivedLitres float64 `json:"received_litres"`
	SoldLitres     float64 `json:"sold_litres"`
}

func (r *CreateStockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TankID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tank_id",
			Message: "tank_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.ReceivedLitres < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "received_litres",
			Message: "received_litres cannot be negative",
		})
	}

	if r.SoldLitres < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "sold_litres",
			Message: "sold_litres cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateTankRequest struct {
	Name           string  `json:"name"`
	FuelType       string  `json:"fuel_type"`
	CapacityLitres float64 `json:"capacity_litres"`
	CurrentLevel   float64 `json:"current_level"`
	LowThreshold   float64 `json:"low_threshold"`
}

func (r *CreateTankRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.FuelType, []string{sale.FuelPetrol, sale.FuelDiesel, sale.FuelPremium}) {
		errs = append(errs, validator.ValidationError{
			Field:   "fuel_type",
			Message: "fuel_type must be Petrol, Diesel, or Premium",
		})
	}

	if r.CapacityLitres <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "capacity_litres",
			Message: "capacity_litres must be greater than zero",
		})
	}

	if r.CurrentLevel < 0 || r.CurrentLevel > r.CapacityLitres {
		errs = append(errs, validator.ValidationError{
			Field:   "current_level",
			Message: "current_level must be between 0 and capacity_litres",
		})
	}

	if r.LowThreshold < 0 || r.LowThreshold > r.CapacityLitres {
		errs = append(errs, validator.ValidationError{
			Field:   "low_threshold",
			Message: "low_threshold must be between 0 and capacity_litres",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	TankID   string `json:"tank_id"`
	FuelType string `json:"fuel_type"`
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

type StockResponse struct {
	ID             string    `json:"id"`
	TankID         string    `json:"tank_id"`
	TankName       *string   `json:"tank_name,omitempty"`
	Date           string    `json:"date"`
	FuelType       string    `json:"fuel_type"`
	OpeningLevel   float64   `json:"opening_level"`
	ReceivedLitres float64   `json:"received_litres"`
	SoldLitres     float64   `json:"sold_litres"`
	ClosingLevel   float64   `json:"closing_level"`
	RecordedBy     string    `json:"recorded_by"`
	CreatedAt      time.Time `json:"created_at"`
}

type TankResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	FuelType       string  `json:"fuel_type"`
	CapacityLitres float64 `json:"capacity_litres"`
	CurrentLevel   float64 `json:"current_level"`
	FillPercent    float64 `json:"fill_percent"`
	LowThreshold   float64 `json:"low_threshold"`
	IsLow          bool    `json:"is_low"`
}

type ListStocksResponse struct {
	Stocks  []StockResponse `json:"stocks"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

func ToStockResponse(s Stock) StockResponse {
	return StockResponse{
		ID:             s.ID,
		TankID:         s.TankID,
		TankName:       s.TankName,
		Date:           s.Date.Format("2006-01-02"),
		FuelType:       s.FuelType,
		OpeningLevel:   s.OpeningLevel,
		ReceivedLitres: s.ReceivedLitres,
		SoldLitres:     s.SoldLitres,
		ClosingLevel:   s.ClosingLevel,
		RecordedBy:     s.RecordedBy,
		CreatedAt:      s.CreatedAt,
	}
}

func ToTankResponse(t Tank) TankResponse {
	return TankResponse{
		ID:             t.ID,
		Name:           t.Name,
		FuelType:       t.FuelType,
		CapacityLitres: t.CapacityLitres,
		CurrentLevel:   t.CurrentLevel,
		FillPercent:    t.FillPercent(),
		LowThreshold:   t.LowThreshold,
		IsLow:          t.IsLow(),
	}
}
