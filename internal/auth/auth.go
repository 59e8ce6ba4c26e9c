package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// issued tokens are valid for 7 days
const tokenTTL = 7 * 24 * time.Hour

// hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// compares a plaintext password against a stored bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// creates a signed JWT for the subject with the given role
func GenerateToken(secret, subjectID string, role Role) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("signing secret not configured")
	}

	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	claims := Claims{
		UserID: subjectID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// validates a token's signature and expiry and returns its claims
func ValidateToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if !claims.Role.Valid() {
		return nil, fmt.Errorf("unknown role %q in token", claims.Role)
	}

	return claims, nil
}
