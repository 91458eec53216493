package stock

import (
	"time"
)

type Stock struct {
	ID              string
	AdminID         string
	TankID          string
	Date            time.Time
	FuelType        string
	OpeningLevel    float64
	ReceivedLitres  float64
	SoldLitres      float64
	ClosingLevel    float64
	RecordedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	TankName *string
}

type Tank struct {
	ID             string
	AdminID        string
	Name           string
	FuelType       string
	CapacityLitres float64
	CurrentLevel   float64
	LowThreshold   float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLow reports whether the tank has dropped to or below its alert
// threshold.
func (t Tank) IsLow() bool {
	return t.CurrentLevel <= t.LowThreshold
}

// FillPercent returns the current level as a percentage of capacity.
func (t Tank) FillPercent() float64 {
	if t.CapacityLitres <= 0 {
		return 0
	}
	return t.CurrentLevel / t.CapacityLitres * 100
}
