package company

import (
	"context"
	"errors"

	"github.com/petrodesk/petrodesk-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepository company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepository: companyRepository}
}

// UpsertCompany implements company.CompanyService.
func (s *CompanyServiceImpl) UpsertCompany(ctx context.Context, adminID string, req company.UpsertCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	profile := company.Company{
		AdminID:   adminID,
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		GSTNumber: req.GSTNumber,
		Phone:     req.Phone,
	}

	existing, err := s.companyRepository.GetByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			created, createErr := s.companyRepository.Create(ctx, profile)
			if createErr != nil {
				return company.CompanyResponse{}, createErr
			}
			return company.ToResponse(created), nil
		}
		return company.CompanyResponse{}, err
	}

	profile.ID = existing.ID
	if err := s.companyRepository.Update(ctx, profile); err != nil {
		return company.CompanyResponse{}, err
	}

	return company.ToResponse(profile), nil
}

// GetCompany implements company.CompanyService.
func (s *CompanyServiceImpl) GetCompany(ctx context.Context, adminID string) (company.CompanyResponse, error) {
	profile, err := s.companyRepository.GetByAdminID(ctx, adminID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(profile), nil
}
