package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("a user with this email already exists")
	ErrUnauthorized = errors.New("unauthorized to manage this user")
)
