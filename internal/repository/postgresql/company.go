package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/petrodesk/petrodesk-backend-go/internal/domain/company"
	"github.com/petrodesk/petrodesk-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

// Create implements company.CompanyRepository.
func (r *companyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (
			admin_id, name, address, city, state, pincode, gst_number, phone
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.AdminID, c.Name, c.Address, c.City, c.State, c.Pincode, c.GSTNumber, c.Phone,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return c, nil
}

// GetByAdminID implements company.CompanyRepository.
func (r *companyRepository) GetByAdminID(ctx context.Context, adminID string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, admin_id, name, address, city, state, pincode, gst_number, phone,
			   created_at, updated_at
		FROM companies
		WHERE admin_id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, adminID).Scan(
		&c.ID, &c.AdminID, &c.Name, &c.Address, &c.City, &c.State, &c.Pincode, &c.GSTNumber, &c.Phone,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepository) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $1, address = $2, city = $3, state = $4, pincode = $5,
			gst_number = $6, phone = $7, updated_at = NOW()
		WHERE admin_id = $8
	`

	tag, err := q.Exec(ctx, query,
		c.Name, c.Address, c.City, c.State, c.Pincode, c.GSTNumber, c.Phone, c.AdminID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}
