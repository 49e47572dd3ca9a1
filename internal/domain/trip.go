// Package domain contains the core data types for the Yatra trip planner.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (kv, store, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// BudgetTier is the coarse budget classification of a trip request.
// An explicit CustomBudget on the trip overrides the tier.
type BudgetTier string

const (
	BudgetTierBudget BudgetTier = "budget" // ₹10k–25k
	BudgetTierMedium BudgetTier = "medium" // ₹25k–50k
	BudgetTierLuxury BudgetTier = "luxury" // ₹50k–100k
)

// TripStatus is the lifecycle tag of a trip.
type TripStatus string

const (
	TripStatusPlanning TripStatus = "planning"
	TripStatusSaved    TripStatus = "saved"
)

// Trip represents a planned journey.
// ID and CreatedAt are assigned once by the store and never change.
type Trip struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Destination         string     `json:"destination"`
	FromLocation        string     `json:"from_location,omitempty"`
	Duration            string     `json:"duration,omitempty"` // free-form, e.g. "5 days"
	Travelers           int        `json:"travelers"`
	Budget              BudgetTier `json:"budget,omitempty"`
	CustomBudget        *int       `json:"custom_budget,omitempty"` // whole rupees; overrides Budget
	TransportMode       string     `json:"transport_mode,omitempty"`
	AdditionalLocations []string   `json:"additional_locations,omitempty"`
	AISuggestions       string     `json:"ai_suggestions,omitempty"` // opaque generated content
	Status              TripStatus `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
	CreatedBy           string     `json:"created_by,omitempty"`
}

// TripUpdate carries the partial fields of an update request.
// Nil pointers leave the existing value untouched (shallow merge).
// ID and CreatedAt are deliberately absent — they are immutable.
type TripUpdate struct {
	Name                *string     `json:"name,omitempty"`
	Destination         *string     `json:"destination,omitempty"`
	FromLocation        *string     `json:"from_location,omitempty"`
	Duration            *string     `json:"duration,omitempty"`
	Travelers           *int        `json:"travelers,omitempty"`
	Budget              *BudgetTier `json:"budget,omitempty"`
	CustomBudget        *int        `json:"custom_budget,omitempty"`
	TransportMode       *string     `json:"transport_mode,omitempty"`
	AdditionalLocations *[]string   `json:"additional_locations,omitempty"`
	AISuggestions       *string     `json:"ai_suggestions,omitempty"`
	Status              *TripStatus `json:"status,omitempty"`
}

// Apply merges the set fields of u into t and returns the result.
// Fields left nil in u keep their existing values.
func (u TripUpdate) Apply(t Trip) Trip {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Destination != nil {
		t.Destination = *u.Destination
	}
	if u.FromLocation != nil {
		t.FromLocation = *u.FromLocation
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Travelers != nil {
		t.Travelers = *u.Travelers
	}
	if u.Budget != nil {
		t.Budget = *u.Budget
	}
	if u.CustomBudget != nil {
		t.CustomBudget = u.CustomBudget
	}
	if u.TransportMode != nil {
		t.TransportMode = *u.TransportMode
	}
	if u.AdditionalLocations != nil {
		t.AdditionalLocations = *u.AdditionalLocations
	}
	if u.AISuggestions != nil {
		t.AISuggestions = *u.AISuggestions
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	return t
}
