package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken emite um JWT HS256 com jti único. O jti é registrado
// no TokenStore para permitir revogação no logout.
func GenerateToken(userID uint, secret string) (token string, jti string, err error) {
	jti = uuid.NewString()

	claims := jwt.MapClaims{
		"sub": float64(userID),
		"jti": jti,
		"exp": time.Now().Add(TokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secret))
	return token, jti, err
}

// ParseToken valida assinatura e expiração e extrai sub + jti.
func ParseToken(tokenString, secret string) (userID uint, jti string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}

	sub, ok1 := claims["sub"].(float64)
	id, ok2 := claims["jti"].(string)
	if !ok1 || !ok2 || id == "" {
		return 0, "", ErrInvalidToken
	}

	return uint(sub), id, nil
}
