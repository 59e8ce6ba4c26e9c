package entitlements

import "time"

// creates a fresh ledger from a plan's quotas: remaining balances are
// copied from the plan, used-counters start at zero
func NewLedger(q Quota) Ledger {
	return Ledger{
		SearchesRemaining:      q.SearchesPerDay,
		AIGenerationsRemaining: q.AIGenerations,
		ExportsRemaining:       q.ExportsPerMonth,
		LastResetDate:          time.Now().UTC(),
	}
}

// returns the remaining balance for a feature
func (l *Ledger) Remaining(f Feature) int {
	switch f {
	case FeatureSearch:
		return l.SearchesRemaining
	case FeatureAIGeneration:
		return l.AIGenerationsRemaining
	case FeatureExport:
		return l.ExportsRemaining
	default:
		return 0
	}
}

// returns the used-counter for a feature
func (l *Ledger) Used(f Feature) int {
	switch f {
	case FeatureSearch:
		return l.SearchesUsedToday
	case FeatureAIGeneration:
		return l.AIGenerationsUsedToday
	case FeatureExport:
		return l.ExportsUsedThisMonth
	default:
		return 0
	}
}

// Consume debits one credit for the feature: an Unlimited balance stays
// at the sentinel, a positive balance decrements by one, a zero balance
// fails with ErrQuotaExhausted and mutates nothing. The used-counter
// increments on every success, sentinel included.
//
// This is the in-memory form of the check-then-decrement; the postgres
// store expresses the same rule as a single conditional UPDATE so it
// stays linearizable across processes.
func (l *Ledger) Consume(f Feature) error {
	if !f.Valid() {
		return ErrUnknownFeature
	}

	if l.Remaining(f) == 0 {
		return ErrQuotaExhausted
	}

	switch f {
	case FeatureSearch:
		if l.SearchesRemaining != Unlimited {
			l.SearchesRemaining--
		}
		l.SearchesUsedToday++
	case FeatureAIGeneration:
		if l.AIGenerationsRemaining != Unlimited {
			l.AIGenerationsRemaining--
		}
		l.AIGenerationsUsedToday++
	case FeatureExport:
		if l.ExportsRemaining != Unlimited {
			l.ExportsRemaining--
		}
		l.ExportsUsedThisMonth++
	}

	return nil
}

// applies an admin override to the remaining balances only
func (l *Ledger) Apply(o Override) {
	if o.SearchesRemaining != nil {
		l.SearchesRemaining = *o.SearchesRemaining
	}

	if o.AIGenerationsRemaining != nil {
		l.AIGenerationsRemaining = *o.AIGenerationsRemaining
	}

	if o.ExportsRemaining != nil {
		l.ExportsRemaining = *o.ExportsRemaining
	}
}
