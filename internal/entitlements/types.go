package entitlements

import "time"

// Unlimited is the sentinel balance for plans without a cap. Unlimited
// balances are never decremented and never exhaust.
const Unlimited = -1

// Feature is the closed set of metered features
type Feature string

const (
	FeatureSearch       Feature = "search"
	FeatureAIGeneration Feature = "ai_generation"
	FeatureExport       Feature = "export"
)

// reports whether the feature is one of the metered variants
func (f Feature) Valid() bool {
	switch f {
	case FeatureSearch, FeatureAIGeneration, FeatureExport:
		return true
	default:
		return false
	}
}

// Quota holds the per-plan limits a fresh ledger is initialized from.
// Each limit is a non-negative count or Unlimited.
type Quota struct {
	SearchesPerDay     int
	AIGenerations      int
	ExportsPerMonth    int
	ResultsPerCategory int
}

// Ledger tracks a user's remaining and consumed allowance per feature.
//
// There is no scheduled reset sweep: used-counters keep their daily and
// monthly names from the plan definitions, but a ledger only resets on
// registration, plan change, or admin override. LastResetDate records
// when that last happened.
type Ledger struct {
	SearchesRemaining      int       `json:"searchesRemaining"`
	AIGenerationsRemaining int       `json:"aiGenerationsRemaining"`
	ExportsRemaining       int       `json:"exportsRemaining"`
	SearchesUsedToday      int       `json:"searchesUsedToday"`
	AIGenerationsUsedToday int       `json:"aiGenerationsUsedToday"`
	ExportsUsedThisMonth   int       `json:"exportsUsedThisMonth"`
	LastResetDate          time.Time `json:"lastResetDate"`
}

// Override carries an admin's direct balance changes. Nil fields are
// left untouched; used-counters and the reset timestamp never change.
type Override struct {
	SearchesRemaining      *int `json:"searchesRemaining"`
	AIGenerationsRemaining *int `json:"aiGenerationsRemaining"`
	ExportsRemaining       *int `json:"exportsRemaining"`
}

// reports whether the override changes anything at all
func (o Override) Empty() bool {
	return o.SearchesRemaining == nil && o.AIGenerationsRemaining == nil && o.ExportsRemaining == nil
}
