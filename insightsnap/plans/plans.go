package plans

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/insightsnap/server/internal/entitlements"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new pricing plan repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new pricing plan
func (r *Repository) Create(ctx context.Context, fields PlanFields) (*PricingPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(
		ctx,
		queryCreate,
		uuid.NewString(),
		fields.Name,
		fields.Description,
		fields.Price,
		fields.Billing,
		fields.TrialInfo,
		fields.Features,
		fields.SearchesPerDay,
		fields.AIGenerations,
		fields.ExportsPerMonth,
		fields.ResultsPerCategory,
		fields.IsPopular,
		fields.IsActive,
	))

	if err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}

	return plan, nil
}

// replaces a plan's writable fields; existing users' ledgers are not
// touched, only future registrations and upgrades see the new quotas
func (r *Repository) Update(ctx context.Context, planID string, fields PlanFields) (*PricingPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(
		ctx,
		queryUpdate,
		planID,
		fields.Name,
		fields.Description,
		fields.Price,
		fields.Billing,
		fields.TrialInfo,
		fields.Features,
		fields.SearchesPerDay,
		fields.AIGenerations,
		fields.ExportsPerMonth,
		fields.ResultsPerCategory,
		fields.IsPopular,
		fields.IsActive,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entitlements.ErrPlanNotFound
		}

		return nil, fmt.Errorf("updating plan: %w", err)
	}

	return plan, nil
}

// removes a plan
func (r *Repository) Delete(ctx context.Context, planID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, planID)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entitlements.ErrPlanNotFound
	}

	return nil
}

// finds a plan by its id
func (r *Repository) FindByID(ctx context.Context, planID string) (*PricingPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx, queryFindByID, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entitlements.ErrPlanNotFound
		}

		return nil, fmt.Errorf("finding plan: %w", err)
	}

	return plan, nil
}

// finds a plan by display name. Users carry the plan name copied at
// upgrade time rather than a live reference, so name lookups back the
// per-plan behavior of already subscribed users.
func (r *Repository) FindByName(ctx context.Context, name string) (*PricingPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx, queryFindByName, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entitlements.ErrPlanNotFound
		}

		return nil, fmt.Errorf("finding plan: %w", err)
	}

	return plan, nil
}

// lists plans, cheapest first; activeOnly restricts to the public set
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]PricingPlan, error) {
	query := queryListAll
	if activeOnly {
		query = queryListActive
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var result []PricingPlan

	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}

		result = append(result, *plan)
	}

	return result, rows.Err()
}

// resolves a plan id to its display name and quotas for the
// entitlement engine
func (r *Repository) PlanQuota(ctx context.Context, planID string) (string, entitlements.Quota, error) {
	plan, err := r.FindByID(ctx, planID)
	if err != nil {
		return "", entitlements.Quota{}, err
	}

	return plan.Name, entitlements.Quota{
		SearchesPerDay:     plan.SearchesPerDay,
		AIGenerations:      plan.AIGenerations,
		ExportsPerMonth:    plan.ExportsPerMonth,
		ResultsPerCategory: plan.ResultsPerCategory,
	}, nil
}

// ensures the repository satisfies the engine's plan contract
var _ entitlements.PlanSource = (*Repository)(nil)

func scanPlan(row pgx.Row) (*PricingPlan, error) {
	var plan PricingPlan

	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Description,
		&plan.Price,
		&plan.Billing,
		&plan.TrialInfo,
		&plan.Features,
		&plan.SearchesPerDay,
		&plan.AIGenerations,
		&plan.ExportsPerMonth,
		&plan.ResultsPerCategory,
		&plan.IsPopular,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &plan, nil
}
