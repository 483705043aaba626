package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest, requester Requester) (User, error)
	GetByEmail(ctx context.Context, email string, requester Requester) (User, error)
	ListByCompany(ctx context.Context, companyID string, requester Requester) ([]User, error)
	Update(ctx context.Context, email string, req UpdateUserRequest, requester Requester) error
	Deactivate(ctx context.Context, email string, requester Requester) error
}
