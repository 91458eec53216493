package company

import (
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/validator"
)

type UpsertCompanyRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Pincode   string  `json:"pincode"`
	GSTNumber *string `json:"gst_number,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (r *UpsertCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if !validator.IsEmpty(r.Pincode) && !validator.IsNumeric(r.Pincode) {
		errs = append(errs, validator.ValidationError{
			Field:   "pincode",
			Message: "pincode must be numeric",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompanyResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Pincode   string  `json:"pincode"`
	GSTNumber *string `json:"gst_number,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Pincode:   c.Pincode,
		GSTNumber: c.GSTNumber,
		Phone:     c.Phone,
	}
}
