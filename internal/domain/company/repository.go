package company

import (
	"context"
)

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)

	GetByAdminID(ctx context.Context, adminID string) (Company, error)

	Update(ctx context.Context, company Company) error
}
