package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	MobilePhone     *string
	CompanyID       string
	Position        *string
	Role            Role
	PassHash        *string
	IsActive        bool
	Salary          *decimal.Decimal // hourly rate
	WorkCapacity    *decimal.Decimal // expected hours per day
	WeekendChoice   *string          // comma-separated weekday names, nil means none
	EmploymentStart *time.Time
	EmploymentEnd   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HourlySalary returns the salary, treating unset as zero.
func (u *User) HourlySalary() decimal.Decimal {
	if u.Salary == nil {
		return decimal.Zero
	}
	return *u.Salary
}

// DailyCapacity returns the expected hours per day, treating unset as zero.
func (u *User) DailyCapacity() decimal.Decimal {
	if u.WorkCapacity == nil {
		return decimal.Zero
	}
	return *u.WorkCapacity
}
