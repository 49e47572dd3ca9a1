package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharma/yatra-planner/backend/internal/catalog"
)

// TestDestinations_FixedOrder pins the gallery size and display order the UI
// relies on when the remote listing is unavailable.
func TestDestinations_FixedOrder(t *testing.T) {
	got := catalog.Destinations()

	require.Len(t, got, 8)
	want := []string{"goa", "jaipur", "munnar", "manali", "rishikesh", "udaipur", "varkala", "ladakh"}
	for i, id := range want {
		assert.Equal(t, id, got[i].ID)
	}
}

func TestDestinations_EntriesComplete(t *testing.T) {
	for _, d := range catalog.Destinations() {
		assert.NotEmpty(t, d.Name, "destination %s", d.ID)
		assert.NotEmpty(t, d.Region, "destination %s", d.ID)
		assert.NotEmpty(t, d.BestSeason, "destination %s", d.ID)
		assert.NotEmpty(t, d.Highlights, "destination %s", d.ID)
		assert.Positive(t, d.AvgBudget, "destination %s", d.ID)
	}
}

// TestDestinations_ReturnsCopy verifies that callers cannot mutate the
// bundled dataset through the returned slice.
func TestDestinations_ReturnsCopy(t *testing.T) {
	first := catalog.Destinations()
	first[0].Name = "mutated"

	assert.Equal(t, "Goa", catalog.Destinations()[0].Name)
}

func TestPackages_FixedOrder(t *testing.T) {
	got := catalog.Packages()

	require.Len(t, got, 5)
	assert.Equal(t, "goa-beach-break", got[0].ID)
	assert.Equal(t, "rishikesh-adventure", got[4].ID)
	for _, p := range got {
		assert.Positive(t, p.Price, "package %s", p.ID)
		assert.Positive(t, p.DurationDays, "package %s", p.ID)
		assert.NotEmpty(t, p.Inclusions, "package %s", p.ID)
	}
}
