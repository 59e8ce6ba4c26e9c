package plans

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles pricing plan database operations
type Repository struct {
	db *pgxpool.Pool
}

// PricingPlan describes a purchasable subscription tier. The quota
// fields are the exact values a user's ledger is reset to on upgrade;
// -1 means unlimited.
type PricingPlan struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	Billing            string    `json:"billing"`
	TrialInfo          string    `json:"trialInfo,omitempty"`
	Features           []string  `json:"features"`
	SearchesPerDay     int       `json:"searchesPerDay"`
	AIGenerations      int       `json:"aiGenerations"`
	ExportsPerMonth    int       `json:"exportsPerMonth"`
	ResultsPerCategory int       `json:"resultsPerCategory"`
	IsPopular          bool      `json:"isPopular"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// PlanFields carries the writable plan attributes for create/update
type PlanFields struct {
	Name               string
	Description        string
	Price              float64
	Billing            string
	TrialInfo          string
	Features           []string
	SearchesPerDay     int
	AIGenerations      int
	ExportsPerMonth    int
	ResultsPerCategory int
	IsPopular          bool
	IsActive           bool
}
