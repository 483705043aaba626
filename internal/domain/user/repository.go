package user

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, email string, req UpdateUserRequest) error
	SetActive(ctx context.Context, email string, active bool) error
}
