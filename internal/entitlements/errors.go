package entitlements

import "errors"

var (
	// ErrQuotaExhausted means the feature's remaining balance is zero
	ErrQuotaExhausted = errors.New("quota exhausted")

	// ErrUserNotFound means no ledger exists for the user id
	ErrUserNotFound = errors.New("user not found")

	// ErrPlanNotFound means an upgrade referenced an unknown plan id
	ErrPlanNotFound = errors.New("plan not found")

	// ErrUnknownFeature means a feature outside the metered set was requested
	ErrUnknownFeature = errors.New("unknown feature")
)
