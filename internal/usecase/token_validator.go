package usecase

import (
	"rental-contracts/internal/domain/user"
	"rental-contracts/internal/pkg/errs"
	"rental-contracts/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenValidation = errs.New("token validation failed")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role.String())
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	userID, err := claims.UserID()
	if err != nil {
		return uuid.Nil, "", errs.Mark(jwt.ErrInvalidToken, ErrTokenValidation)
	}

	return userID, role, nil
}
