package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService issues and validates the HS256 tokens used by the API.
type TokenService interface {
	Generate(userID, role string) (string, error)
	Validate(tokenStr string) (jwt.MapClaims, error)
}

type tokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService with a 24 hour token lifetime.
func NewTokenService(secret string) TokenService {
	return &tokenServiceImpl{secret: []byte(secret), ttl: 24 * time.Hour}
}

func (t *tokenServiceImpl) Generate(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *tokenServiceImpl) Validate(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
