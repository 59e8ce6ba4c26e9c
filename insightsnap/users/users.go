package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/insightsnap/server/internal/entitlements"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new user with a fresh ledger; ErrEmailTaken when the email
// is already registered
func (r *Repository) Create(ctx context.Context, name, email, passwordHash, plan string, ledger entitlements.Ledger) (*User, error) {
	row := r.db.QueryRow(
		ctx,
		queryCreate,
		uuid.NewString(),
		name,
		email,
		passwordHash,
		plan,
		ledger.SearchesRemaining,
		ledger.AIGenerationsRemaining,
		ledger.ExportsRemaining,
		ledger.LastResetDate,
	)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}

		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// finds a user by their id
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entitlements.ErrUserNotFound
		}

		return nil, fmt.Errorf("finding user: %w", err)
	}

	return user, nil
}

// finds a user by email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entitlements.ErrUserNotFound
		}

		return nil, fmt.Errorf("finding user: %w", err)
	}

	return user, nil
}

// lists all users, newest first
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var result []User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		result = append(result, *user)
	}

	return result, rows.Err()
}

// returns the user's current ledger
func (r *Repository) Ledger(ctx context.Context, userID string) (*entitlements.Ledger, error) {
	ledger, err := scanLedger(r.db.QueryRow(ctx, queryLedger, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entitlements.ErrUserNotFound
		}

		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	return ledger, nil
}

// debits one credit via a conditional update; the statement matches no
// row when the balance is zero, so concurrent calls can never race past
// the last credit
func (r *Repository) Consume(ctx context.Context, userID string, f entitlements.Feature) (*entitlements.Ledger, error) {
	var query string

	switch f {
	case entitlements.FeatureSearch:
		query = queryConsumeSearch
	case entitlements.FeatureAIGeneration:
		query = queryConsumeAIGeneration
	case entitlements.FeatureExport:
		query = queryConsumeExport
	default:
		return nil, entitlements.ErrUnknownFeature
	}

	ledger, err := scanLedger(r.db.QueryRow(ctx, query, userID))
	if err == nil {
		return ledger, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("consuming credit: %w", err)
	}

	// no row matched: either the user is gone or the balance hit zero
	var exists bool
	if err := r.db.QueryRow(ctx, queryExists, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}

	if !exists {
		return nil, entitlements.ErrUserNotFound
	}

	return nil, entitlements.ErrQuotaExhausted
}

// swaps the plan name and resets the ledger in a single statement
func (r *Repository) SetPlan(ctx context.Context, userID, planName string, l entitlements.Ledger) error {
	tag, err := r.db.Exec(
		ctx,
		querySetPlan,
		userID,
		planName,
		l.SearchesRemaining,
		l.AIGenerationsRemaining,
		l.ExportsRemaining,
		l.LastResetDate,
	)

	if err != nil {
		return fmt.Errorf("setting plan: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entitlements.ErrUserNotFound
	}

	return nil
}

// sets remaining balances directly; nil fields stay as they are
func (r *Repository) OverrideBalances(ctx context.Context, userID string, o entitlements.Override) error {
	tag, err := r.db.Exec(
		ctx,
		queryOverrideBalances,
		userID,
		o.SearchesRemaining,
		o.AIGenerationsRemaining,
		o.ExportsRemaining,
	)

	if err != nil {
		return fmt.Errorf("overriding balances: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entitlements.ErrUserNotFound
	}

	return nil
}

// ensures the repository satisfies the engine's store contract
var _ entitlements.LedgerStore = (*Repository)(nil)

func scanUser(row pgx.Row) (*User, error) {
	var (
		user      User
		lastReset time.Time
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Plan,
		&user.Credits.SearchesRemaining,
		&user.Credits.AIGenerationsRemaining,
		&user.Credits.ExportsRemaining,
		&user.Credits.SearchesUsedToday,
		&user.Credits.AIGenerationsUsedToday,
		&user.Credits.ExportsUsedThisMonth,
		&lastReset,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	user.Credits.LastResetDate = lastReset

	return &user, nil
}

func scanLedger(row pgx.Row) (*entitlements.Ledger, error) {
	var ledger entitlements.Ledger

	err := row.Scan(
		&ledger.SearchesRemaining,
		&ledger.AIGenerationsRemaining,
		&ledger.ExportsRemaining,
		&ledger.SearchesUsedToday,
		&ledger.AIGenerationsUsedToday,
		&ledger.ExportsUsedThisMonth,
		&ledger.LastResetDate,
	)

	if err != nil {
		return nil, err
	}

	return &ledger, nil
}
