package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyNameExists = errors.New("a company with this name already exists")
	ErrUnauthorized      = errors.New("unauthorized to manage companies")
)
