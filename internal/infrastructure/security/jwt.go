// Package security provides JWT token utilities
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateSellerToken creates a JWT token for an authenticated seller
func GenerateSellerToken(userID, email, jwtSecret string, ttl time.Duration) (string, error) {
	if jwtSecret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// SellerFromClaims extracts the seller identity from validated claims
func SellerFromClaims(claims jwt.MapClaims) (userID, email string, err error) {
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", "", errors.New("token missing subject claim")
	}
	email, _ = claims["email"].(string)
	return userID, email, nil
}
