package company

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetAllActive(ctx context.Context) ([]Company, error)
	List(ctx context.Context) ([]Company, error)
	// GetAdmins returns the active employer or org_admin users of a company.
	GetAdmins(ctx context.Context, companyID string) ([]user.User, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
}
