package company

import (
	"context"
	"fmt"

	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest, requester user.Requester) (company.Company, error) {
	if !requester.Role.IsOrgAdmin() {
		return company.Company{}, company.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		return company.Company{}, err
	}
	return created, nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, requester user.Requester) ([]company.Company, error) {
	if !requester.Role.IsOrgAdmin() {
		return nil, company.ErrUnauthorized
	}

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetByID implements company.CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string, requester user.Requester) (company.Company, error) {
	if requester.Role.IsEmployee() {
		return company.Company{}, company.ErrUnauthorized
	}
	if requester.Role.IsEmployer() && requester.CompanyID != id {
		return company.Company{}, company.ErrUnauthorized
	}

	return s.companyRepo.GetByID(ctx, id)
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest, requester user.Requester) error {
	if !requester.Role.IsOrgAdmin() {
		return company.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.companyRepo.Update(ctx, id, req)
}
