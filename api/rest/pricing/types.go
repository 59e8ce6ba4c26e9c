package pricing

import "codeberg.org/insightsnap/server/insightsnap/plans"

// PublicPlan is the plan projection shown to visitors: no active flag,
// no timestamps
type PublicPlan struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	Billing            string   `json:"billing"`
	TrialInfo          string   `json:"trialInfo,omitempty"`
	Features           []string `json:"features"`
	SearchesPerDay     int      `json:"searchesPerDay"`
	AIGenerations      int      `json:"aiGenerations"`
	ExportsPerMonth    int      `json:"exportsPerMonth"`
	ResultsPerCategory int      `json:"resultsPerCategory"`
	IsPopular          bool     `json:"isPopular"`
}

// builds the public projection of a plan
func NewPublicPlan(p plans.PricingPlan) PublicPlan {
	return PublicPlan{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		Billing:            p.Billing,
		TrialInfo:          p.TrialInfo,
		Features:           p.Features,
		SearchesPerDay:     p.SearchesPerDay,
		AIGenerations:      p.AIGenerations,
		ExportsPerMonth:    p.ExportsPerMonth,
		ResultsPerCategory: p.ResultsPerCategory,
		IsPopular:          p.IsPopular,
	}
}
