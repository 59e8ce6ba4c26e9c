package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of authorization levels a token can carry
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// reports whether the role is one of the known variants
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Claims carried by every issued token
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}
