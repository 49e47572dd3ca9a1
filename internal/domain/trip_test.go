package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// TestTripUpdate_ApplyMergesOnlySetFields verifies shallow-merge semantics:
// nil pointers leave existing values untouched, set pointers overwrite.
func TestTripUpdate_ApplyMergesOnlySetFields(t *testing.T) {
	base := domain.Trip{
		ID:           uuid.New(),
		Name:         "Original",
		Destination:  "Goa",
		FromLocation: "Mumbai",
		Travelers:    2,
		Budget:       domain.BudgetTierMedium,
		Status:       domain.TripStatusPlanning,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	name := "Updated"
	status := domain.TripStatusSaved
	got := domain.TripUpdate{Name: &name, Status: &status}.Apply(base)

	assert.Equal(t, "Updated", got.Name)
	assert.Equal(t, domain.TripStatusSaved, got.Status)
	assert.Equal(t, base.Destination, got.Destination)
	assert.Equal(t, base.FromLocation, got.FromLocation)
	assert.Equal(t, base.Travelers, got.Travelers)
	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, base.CreatedAt, got.CreatedAt)
}

func TestTripUpdate_ApplyEmptyIsIdentity(t *testing.T) {
	base := domain.Trip{Name: "Unchanged", Destination: "Jaipur", Travelers: 1}

	assert.Equal(t, base, domain.TripUpdate{}.Apply(base))
}

// TestTripUpdate_ApplyCanSetEmptyValues verifies that a pointer to a zero
// value is an explicit overwrite, distinct from an absent field.
func TestTripUpdate_ApplyCanSetEmptyValues(t *testing.T) {
	base := domain.Trip{Name: "x", Destination: "Goa", FromLocation: "Mumbai", Travelers: 1}

	empty := ""
	got := domain.TripUpdate{FromLocation: &empty}.Apply(base)

	assert.Empty(t, got.FromLocation)
}

func TestTripRequest_BudgetTotal(t *testing.T) {
	custom := 64000
	tests := []struct {
		name string
		req  domain.TripRequest
		want int
	}{
		{"custom budget wins", domain.TripRequest{Budget: domain.BudgetTierLuxury, CustomBudget: &custom}, 64000},
		{"budget tier", domain.TripRequest{Budget: domain.BudgetTierBudget}, 25000},
		{"medium tier", domain.TripRequest{Budget: domain.BudgetTierMedium}, 50000},
		{"luxury tier", domain.TripRequest{Budget: domain.BudgetTierLuxury}, 100000},
		{"empty tier defaults to medium", domain.TripRequest{}, 50000},
		{"unknown tier defaults to medium", domain.TripRequest{Budget: "lavish"}, 50000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.BudgetTotal())
		})
	}
}

// TestTripRequest_BudgetTotal_IgnoresNonPositiveCustom verifies that a zero
// or negative custom budget falls through to the tier bound.
func TestTripRequest_BudgetTotal_IgnoresNonPositiveCustom(t *testing.T) {
	zero := 0
	req := domain.TripRequest{Budget: domain.BudgetTierBudget, CustomBudget: &zero}

	assert.Equal(t, 25000, req.BudgetTotal())
}
