package admin

import (
	"codeberg.org/insightsnap/server/insightsnap/plans"
	"codeberg.org/insightsnap/server/insightsnap/settings"
	"codeberg.org/insightsnap/server/internal/entitlements"
)

// LoginRequest for the admin console
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminProfile is the public projection of an admin account
type AdminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse returned after a successful admin login
type LoginResponse struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

// PlanRequest is the typed payload for plan create and update. Quota
// fields accept -1 for unlimited; anything below that is rejected at
// the boundary.
type PlanRequest struct {
	Name               string   `json:"name" binding:"required,max=100"`
	Description        string   `json:"description" binding:"required,max=500"`
	Price              float64  `json:"price" binding:"gte=0"`
	Billing            string   `json:"billing" binding:"required,max=50"`
	TrialInfo          string   `json:"trialInfo" binding:"max=200"`
	Features           []string `json:"features" binding:"required,min=1"`
	SearchesPerDay     int      `json:"searchesPerDay" binding:"gte=-1"`
	AIGenerations      int      `json:"aiGenerations" binding:"gte=-1"`
	ExportsPerMonth    int      `json:"exportsPerMonth" binding:"gte=-1"`
	ResultsPerCategory int      `json:"resultsPerCategory" binding:"gte=1"`
	IsPopular          bool     `json:"isPopular"`
	IsActive           bool     `json:"isActive"`
}

// converts the request into repository fields
func (r PlanRequest) Fields() plans.PlanFields {
	return plans.PlanFields{
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		Billing:            r.Billing,
		TrialInfo:          r.TrialInfo,
		Features:           r.Features,
		SearchesPerDay:     r.SearchesPerDay,
		AIGenerations:      r.AIGenerations,
		ExportsPerMonth:    r.ExportsPerMonth,
		ResultsPerCategory: r.ResultsPerCategory,
		IsPopular:          r.IsPopular,
		IsActive:           r.IsActive,
	}
}

// PaymentUpdateRequest configures one gateway
type PaymentUpdateRequest struct {
	Gateway     string                      `json:"gateway" binding:"required,oneof=razorpay paypal"`
	Enabled     bool                        `json:"enabled"`
	Credentials settings.PaymentCredentials `json:"credentials"`
}

// GatewaySummary is the non-secret view of one gateway's settings
type GatewaySummary struct {
	Enabled  bool   `json:"enabled"`
	KeyID    string `json:"keyId,omitempty"`
	ClientID string `json:"clientId,omitempty"`
}

// PaymentSettingsResponse groups the known gateways
type PaymentSettingsResponse struct {
	Razorpay GatewaySummary `json:"razorpay"`
	PayPal   GatewaySummary `json:"paypal"`
}

// SEOUpdateRequest replaces a page's SEO metadata
type SEOUpdateRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=500"`
	Keywords    []string `json:"keywords" binding:"required"`
	Canonical   string   `json:"canonical" binding:"required,url"`
	OGImage     string   `json:"ogImage" binding:"omitempty,url"`
}

// UserSummary is the admin view of a user account
type UserSummary struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Plan      string              `json:"plan"`
	Credits   entitlements.Ledger `json:"credits"`
	CreatedAt string              `json:"createdAt"`
}

// SuccessResponse is the generic mutation acknowledgement
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Page    string `json:"page,omitempty"`
}
