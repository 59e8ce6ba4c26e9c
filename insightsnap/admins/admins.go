package admins

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/insightsnap/server/internal/auth"
	"codeberg.org/insightsnap/server/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new admin repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// finds an administrator by username
func (r *Repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin

	err := r.db.QueryRow(ctx, queryFindByUsername, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}

		return nil, fmt.Errorf("finding admin: %w", err)
	}

	return &admin, nil
}

// creates the bootstrap administrator account if none exists with that
// username; the default credentials are for development only
func (r *Repository) EnsureDefault(ctx context.Context, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}

	tag, err := r.db.Exec(ctx, queryInsertIfMissing, uuid.NewString(), username, hash)
	if err != nil {
		return fmt.Errorf("seeding default admin: %w", err)
	}

	if tag.RowsAffected() > 0 {
		logger.Info("default admin created", "username", username)
	}

	return nil
}
