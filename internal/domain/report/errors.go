package report

import "errors"

var ErrUnauthorized = errors.New("unauthorized access")
