package jwt

import (
	"errors"
	"fmt"
	"time"

	"pgBooker/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// NewToken issues an HS256 token carrying the user's id and role.
func NewToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken validates the signature and expiry and returns the actor the
// token describes.
func ParseToken(tokenStr, secret string) (models.Actor, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return models.Actor{}, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || !models.Role(role).Valid() {
		return models.Actor{}, ErrInvalidToken
	}

	return models.Actor{
		ID:   int64(uid),
		Role: models.Role(role),
	}, nil
}
