package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/database"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	id, email, first_name, last_name, mobile_phone, company_id, position,
	role, pass_hash, is_active, salary, work_capacity, weekend_choice,
	employment_start, employment_end, created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var salary, capacity decimal.NullDecimal

	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.MobilePhone, &u.CompanyID, &u.Position,
		&u.Role, &u.PassHash, &u.IsActive, &salary, &capacity, &u.WeekendChoice,
		&u.EmploymentStart, &u.EmploymentEnd, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	if salary.Valid {
		u.Salary = &salary.Decimal
	}
	if capacity.Valid {
		u.WorkCapacity = &capacity.Decimal
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, fmt.Errorf("user %s: %w", email, user.ErrUserNotFound)
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetActiveByCompanyID implements user.UserRepository.
func (r *userRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY first_name ASC, last_name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			email, first_name, last_name, mobile_phone, company_id, position,
			role, pass_hash, is_active, salary, work_capacity, weekend_choice,
			employment_start, employment_end
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.FirstName,
		newUser.LastName,
		newUser.MobilePhone,
		newUser.CompanyID,
		newUser.Position,
		newUser.Role,
		newUser.PassHash,
		newUser.IsActive,
		newUser.Salary,
		newUser.WorkCapacity,
		newUser.WeekendChoice,
		newUser.EmploymentStart,
		newUser.EmploymentEnd,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, fmt.Errorf("user %s: %w", newUser.Email, user.ErrEmailExists)
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, email string, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.MobilePhone != nil {
		updates["mobile_phone"] = *req.MobilePhone
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Salary != nil {
		updates["salary"] = decimal.NewFromFloat(*req.Salary)
	}
	if req.WorkCapacity != nil {
		updates["work_capacity"] = decimal.NewFromFloat(*req.WorkCapacity)
	}
	if req.WeekendChoice != nil {
		updates["weekend_choice"] = *req.WeekendChoice
	}
	if req.EmploymentStart != nil {
		if t, ok := validator.IsValidDateTime(*req.EmploymentStart); ok {
			updates["employment_start"] = t
		}
	}
	if req.EmploymentEnd != nil {
		if t, ok := validator.IsValidDateTime(*req.EmploymentEnd); ok {
			updates["employment_end"] = t
		}
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for user update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE users SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE email = $%d", i)
	args = append(args, email)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", email, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, user.ErrUserNotFound)
	}
	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, email string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE users SET is_active = $1, updated_at = NOW() WHERE email = $2`,
		active, email,
	)
	if err != nil {
		return fmt.Errorf("failed to set user active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, user.ErrUserNotFound)
	}
	return nil
}
