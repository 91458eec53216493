package report

import (
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
)

type ExportSalesRequest struct {
	AdminID     string `json:"-"`
	GeneratedBy string `json:"-"`
	Format      string `json:"format"`
	StaffID     string `json:"staff_id"`
	FuelType    string `json:"fuel_type"`
	Shift       string `json:"shift"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
}

func (r *ExportSalesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Format, []string{FormatCSV, FormatHTML, FormatXLSX, FormatPDF}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv, html, xlsx, or pdf",
		})
	}

	if r.DateFrom != "" {
		if _, ok := validator.IsValidDate(r.DateFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DateTo != "" {
		if _, ok := validator.IsValidDate(r.DateTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
