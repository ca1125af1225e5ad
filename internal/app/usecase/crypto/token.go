package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/voyago/travel-order-service/internal/app/entity"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/errors"
)

type Claims struct {
	jwt.RegisteredClaims

	UserID  entity.UserID `json:"user_id"`
	IsAdmin bool          `json:"is_admin"`
}

// BuildJWTString issues a signed bearer token for the given actor.
func BuildJWTString(actor entity.Actor, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:  actor.ID,
		IsAdmin: actor.IsAdmin,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error while signing jwt token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates the token signature and expiry and returns its claims.
func ParseToken(tokenString, secret string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, usecase.ErrTokenExpired
		}

		return Claims{}, usecase.ErrTokenNotValid
	}

	if !token.Valid || !claims.UserID.Valid() {
		return Claims{}, usecase.ErrTokenNotValid
	}

	return claims, nil
}
