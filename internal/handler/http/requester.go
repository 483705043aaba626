package http

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

var errInvalidClaims = errors.New("invalid token claims")

// RequesterFromContext extracts the authenticated caller from the verified
// JWT claims placed on the request context.
func RequesterFromContext(ctx context.Context) (user.Requester, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Requester{}, err
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return user.Requester{}, errInvalidClaims
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).Valid() {
		return user.Requester{}, errInvalidClaims
	}
	companyID, _ := claims["company_id"].(string)

	return user.Requester{
		Email:     email,
		Role:      user.Role(roleStr),
		CompanyID: companyID,
	}, nil
}
