package auth

import (
	"codeberg.org/insightsnap/server/insightsnap/users"
	"codeberg.org/insightsnap/server/internal/entitlements"
)

// RegisterRequest for creating a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest for authenticating with email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the public projection of a user record
type UserProfile struct {
	ID      string              `json:"id"`
	Name    string              `json:"name"`
	Email   string              `json:"email"`
	Role    string              `json:"role"`
	Plan    string              `json:"plan"`
	Credits entitlements.Ledger `json:"credits"`
}

// AuthResponse returned after successful registration or login
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// builds the public profile for a user record
func NewUserProfile(u *users.User) UserProfile {
	return UserProfile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    "user",
		Plan:    u.Plan,
		Credits: u.Credits,
	}
}
