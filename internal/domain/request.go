package domain

import "github.com/google/uuid"

// TripRequest is the user's input to plan generation.
// It is the sole input of the deterministic fallback generator, so two
// identical requests must always yield identical plans.
type TripRequest struct {
	TripID              uuid.UUID  `json:"trip_id,omitempty"` // optional; when set, the plan is saved onto the trip
	Destination         string     `json:"destination"`
	FromLocation        string     `json:"from_location,omitempty"`
	Duration            string     `json:"duration,omitempty"`
	Travelers           int        `json:"travelers"`
	Budget              BudgetTier `json:"budget,omitempty"`
	CustomBudget        *int       `json:"custom_budget,omitempty"`
	TransportMode       string     `json:"transport_mode,omitempty"`
	AdditionalLocations []string   `json:"additional_locations,omitempty"`
}

// BudgetTotal returns the whole-rupee total the plan should be built around:
// the explicit custom budget when present, otherwise the upper bound of the
// selected tier. An unknown or empty tier falls back to the medium bound.
func (r TripRequest) BudgetTotal() int {
	if r.CustomBudget != nil && *r.CustomBudget > 0 {
		return *r.CustomBudget
	}
	switch r.Budget {
	case BudgetTierBudget:
		return 25000
	case BudgetTierLuxury:
		return 100000
	default:
		return 50000
	}
}
