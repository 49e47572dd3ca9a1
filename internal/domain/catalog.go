package domain

// Destination is a curated destination shown in the gallery.
// These records are not user-authored; the offline path for listing them is
// a fixed bundled dataset, not the record store.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Region      string   `json:"region"` // north, south, coastal
	Tagline     string   `json:"tagline"`
	BestSeason  string   `json:"best_season"`
	Highlights  []string `json:"highlights,omitempty"`
	AvgBudget   int      `json:"avg_budget"` // typical per-person whole-rupee spend
}

// Package is a pre-assembled tour offering.
type Package struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Destination  string     `json:"destination"`
	DurationDays int        `json:"duration_days"`
	Price        int        `json:"price"` // per person, whole rupees
	Tier         BudgetTier `json:"tier"`
	Inclusions   []string   `json:"inclusions,omitempty"`
}
