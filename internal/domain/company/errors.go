package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company profile not found")
	ErrCompanyExists   = errors.New("company profile already exists for this admin")
)
