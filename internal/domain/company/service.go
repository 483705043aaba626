package company

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest, requester user.Requester) (Company, error)
	List(ctx context.Context, requester user.Requester) ([]Company, error)
	GetByID(ctx context.Context, id string, requester user.Requester) (Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest, requester user.Requester) error
}
