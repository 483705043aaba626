package user

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// canManageCompany reports whether the requester may manage accounts of the
// given company. Employees manage nobody.
func canManageCompany(requester user.Requester, companyID string) bool {
	if requester.Role.IsOrgAdmin() {
		return true
	}
	if requester.Role.IsEmployer() {
		return requester.CompanyID == companyID
	}
	return false
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest, requester user.Requester) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if !canManageCompany(requester, req.CompanyID) {
		return user.User{}, user.ErrUnauthorized
	}
	// Only an org admin may mint another org admin.
	if user.Role(req.Role).IsOrgAdmin() && !requester.Role.IsOrgAdmin() {
		return user.User{}, user.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passHash := string(hash)

	newUser := user.User{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		MobilePhone: req.MobilePhone,
		CompanyID:   req.CompanyID,
		Position:    req.Position,
		Role:        user.Role(req.Role),
		PassHash:    &passHash,
		IsActive:    true,
	}

	if req.Salary != nil {
		salary := decimal.NewFromFloat(*req.Salary)
		newUser.Salary = &salary
	}
	if req.WorkCapacity != nil {
		capacity := decimal.NewFromFloat(*req.WorkCapacity)
		newUser.WorkCapacity = &capacity
	}
	newUser.WeekendChoice = req.WeekendChoice
	newUser.EmploymentStart = parseTimestamp(req.EmploymentStart)
	newUser.EmploymentEnd = parseTimestamp(req.EmploymentEnd)

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// GetByEmail implements user.UserService.
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string, requester user.Requester) (user.User, error) {
	if requester.Role.IsEmployee() && email != requester.Email {
		return user.User{}, user.ErrUnauthorized
	}

	found, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, err
	}

	if requester.Role.IsEmployer() && found.CompanyID != requester.CompanyID {
		return user.User{}, user.ErrUnauthorized
	}

	return found, nil
}

// ListByCompany implements user.UserService.
func (s *UserServiceImpl) ListByCompany(ctx context.Context, companyID string, requester user.Requester) ([]user.User, error) {
	if !canManageCompany(requester, companyID) {
		return nil, user.ErrUnauthorized
	}

	users, err := s.userRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	return users, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, email string, req user.UpdateUserRequest, requester user.Requester) error {
	if err := req.Validate(); err != nil {
		return err
	}

	subject, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !canManageCompany(requester, subject.CompanyID) {
		return user.ErrUnauthorized
	}
	if req.Role != nil && user.Role(*req.Role).IsOrgAdmin() && !requester.Role.IsOrgAdmin() {
		return user.ErrUnauthorized
	}

	return s.userRepo.Update(ctx, email, req)
}

// Deactivate implements user.UserService.
func (s *UserServiceImpl) Deactivate(ctx context.Context, email string, requester user.Requester) error {
	subject, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !canManageCompany(requester, subject.CompanyID) {
		return user.ErrUnauthorized
	}

	return s.userRepo.SetActive(ctx, email, false)
}

func parseTimestamp(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := validator.IsValidDateTime(*value)
	if !ok {
		return nil
	}
	utc := t.UTC()
	return &utc
}
