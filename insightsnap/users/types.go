package users

import (
	"errors"
	"time"

	"codeberg.org/insightsnap/server/internal/entitlements"
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations; also serves as the postgres-backed
// entitlements.LedgerStore
type Repository struct {
	db *pgxpool.Pool
}

// ErrEmailTaken means registration reused an already registered email
var ErrEmailTaken = errors.New("email already registered")

// represents a registered account with its embedded credit ledger
type User struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	PasswordHash string              `json:"-"`
	Plan         string              `json:"plan"`
	Credits      entitlements.Ledger `json:"credits"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
