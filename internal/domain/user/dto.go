package user

import (
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	MobilePhone     *string  `json:"mobile_phone"`
	CompanyID       string   `json:"company_id"`
	Position        *string  `json:"position"`
	Role            string   `json:"role"`
	Salary          *float64 `json:"salary"`
	WorkCapacity    *float64 `json:"work_capacity"`
	WeekendChoice   *string  `json:"weekend_choice"`
	EmploymentStart *string  `json:"employment_start"`
	EmploymentEnd   *string  `json:"employment_end"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of org_admin, employer, employee",
		})
	}

	if r.WeekendChoice != nil && !validator.IsValidWeekendChoice(*r.WeekendChoice) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekend_choice",
			Message: "weekend_choice must be a comma-separated list of weekday names",
		})
	}

	errs = append(errs, validateEmploymentDates(r.EmploymentStart, r.EmploymentEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	MobilePhone     *string  `json:"mobile_phone"`
	Position        *string  `json:"position"`
	Role            *string  `json:"role"`
	Salary          *float64 `json:"salary"`
	WorkCapacity    *float64 `json:"work_capacity"`
	WeekendChoice   *string  `json:"weekend_choice"`
	EmploymentStart *string  `json:"employment_start"`
	EmploymentEnd   *string  `json:"employment_end"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Role != nil && !Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of org_admin, employer, employee",
		})
	}

	if r.WeekendChoice != nil && !validator.IsValidWeekendChoice(*r.WeekendChoice) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekend_choice",
			Message: "weekend_choice must be a comma-separated list of weekday names",
		})
	}

	errs = append(errs, validateEmploymentDates(r.EmploymentStart, r.EmploymentEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEmploymentDates(start, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if start != nil {
		if _, ok := validator.IsValidDateTime(*start); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_start",
				Message: "employment_start must be an ISO8601 timestamp",
			})
		}
	}
	if end != nil {
		if _, ok := validator.IsValidDateTime(*end); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_end",
				Message: "employment_end must be an ISO8601 timestamp",
			})
		}
	}
	if start != nil && end != nil {
		startAt, okS := validator.IsValidDateTime(*start)
		endAt, okE := validator.IsValidDateTime(*end)
		if okS && okE && endAt.Before(startAt) {
			errs = append(errs, validator.ValidationError{
				Field:   "employment_end",
				Message: "employment_end must not be before employment_start",
			})
		}
	}

	return errs
}
