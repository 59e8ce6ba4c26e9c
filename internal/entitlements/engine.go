package entitlements

import (
	"context"
	"fmt"
)

// LedgerStore is the persistence contract for credit ledgers. Consume
// must be atomic per (user, feature): two concurrent calls must never
// both observe the last credit and decrement past zero. SetPlan must
// write the plan name and the fresh ledger in one atomic update.
type LedgerStore interface {
	Ledger(ctx context.Context, userID string) (*Ledger, error)
	Consume(ctx context.Context, userID string, f Feature) (*Ledger, error)
	SetPlan(ctx context.Context, userID, planName string, l Ledger) error
	OverrideBalances(ctx context.Context, userID string, o Override) error
}

// PlanSource resolves a plan id to its display name and quotas
type PlanSource interface {
	PlanQuota(ctx context.Context, planID string) (string, Quota, error)
}

// Engine is the sole arbiter of metered feature use: it owns the
// plan → quota → balance lifecycle and every ledger mutation.
type Engine struct {
	store LedgerStore
	plans PlanSource
}

// creates an entitlement engine on top of a ledger store and a plan source
func NewEngine(store LedgerStore, plans PlanSource) *Engine {
	return &Engine{store: store, plans: plans}
}

// debits one credit for the feature and returns the resulting ledger
func (e *Engine) TryConsume(ctx context.Context, userID string, f Feature) (*Ledger, error) {
	if !f.Valid() {
		return nil, ErrUnknownFeature
	}

	ledger, err := e.store.Consume(ctx, userID, f)
	if err != nil {
		return nil, err
	}

	return ledger, nil
}

// switches the user to the plan and resets the ledger to the plan's
// quotas, atomically with the plan name change
func (e *Engine) Upgrade(ctx context.Context, userID, planID string) (string, *Ledger, error) {
	planName, quota, err := e.plans.PlanQuota(ctx, planID)
	if err != nil {
		return "", nil, err
	}

	ledger := NewLedger(quota)

	if err := e.store.SetPlan(ctx, userID, planName, ledger); err != nil {
		return "", nil, fmt.Errorf("switching plan: %w", err)
	}

	return planName, &ledger, nil
}

// sets remaining balances directly, bypassing the plan's quotas.
// Used-counters and the reset timestamp are left untouched.
func (e *Engine) Override(ctx context.Context, userID string, o Override) error {
	if o.Empty() {
		return nil
	}

	return e.store.OverrideBalances(ctx, userID, o)
}

// returns the user's current ledger
func (e *Engine) Ledger(ctx context.Context, userID string) (*Ledger, error) {
	return e.store.Ledger(ctx, userID)
}
