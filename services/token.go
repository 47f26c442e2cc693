package services

import (
	"github.com/dgrijalva/jwt-go"

	"github.com/kenandcrys/auth-me/errors"
)

// GetUserIDFromToken verifies the token signature and extracts the user id
// from its claims.
func GetUserIDFromToken(tokenString string) (uint, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return secretKey(), nil
	})
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}

	if !token.Valid || claims.UserInfo.UserID == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token claims", nil)
	}

	return claims.UserInfo.UserID, nil
}
