package company

import (
	"context"
)

// CompanyService manages the station profile for an admin.
type CompanyService interface {
	// UpsertCompany creates the admin's profile or updates it in place.
	UpsertCompany(ctx context.Context, adminID string, req UpsertCompanyRequest) (CompanyResponse, error)

	GetCompany(ctx context.Context, adminID string) (CompanyResponse, error)
}
