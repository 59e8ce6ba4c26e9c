package users

import "codeberg.org/insightsnap/server/internal/entitlements"

// UpgradeRequest selects the plan to switch to
type UpgradeRequest struct {
	PlanID string `json:"planId" binding:"required"`
}

// UpgradeResponse confirms the plan switch
type UpgradeResponse struct {
	Success bool                `json:"success"`
	Plan    string              `json:"plan"`
	Credits entitlements.Ledger `json:"credits"`
}
