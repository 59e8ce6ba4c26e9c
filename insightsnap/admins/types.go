package admins

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles administrator account database operations
type Repository struct {
	db *pgxpool.Pool
}

// ErrAdminNotFound means no administrator exists with that username
var ErrAdminNotFound = errors.New("admin not found")

// represents a console administrator
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
