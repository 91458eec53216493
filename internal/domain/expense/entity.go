package expense

import (
	"time"
)

// Expense categories tracked by the station.
const (
	CategorySalary      = "salary"
	CategoryMaintenance = "maintenance"
	CategoryElectricity = "electricity"
	CategorySupplies    = "supplies"
	CategoryOther       = "other"
)

type Expense struct {
	ID          string
	AdminID     string
	Date        time.Time
	Category    string
	Description string
	Amount      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
