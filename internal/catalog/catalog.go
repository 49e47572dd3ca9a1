// Package catalog bundles the fixed reference datasets served when a remote
// listing of non-user-authored entities fails. Unlike trips and reviews,
// destinations and packages are curated content, so the offline path is this
// static data rather than the record store.
package catalog

import "github.com/asharma/yatra-planner/backend/internal/domain"

// destinations is the bundled gallery, in display order.
// Exactly eight entries; tests pin the count and ordering.
var destinations = []domain.Destination{
	{
		ID: "goa", Name: "Goa", Region: "coastal",
		Tagline:    "Beaches, forts, and susegad evenings",
		BestSeason: "November to February",
		Highlights: []string{"Palolem Beach", "Fort Aguada", "Spice plantations"},
		AvgBudget:  30000,
	},
	{
		ID: "jaipur", Name: "Jaipur", Region: "north",
		Tagline:    "The pink city of palaces and bazaars",
		BestSeason: "October to March",
		Highlights: []string{"Amber Fort", "Hawa Mahal", "Johari Bazaar"},
		AvgBudget:  25000,
	},
	{
		ID: "munnar", Name: "Munnar", Region: "south",
		Tagline:    "Tea gardens in the Western Ghats",
		BestSeason: "September to March",
		Highlights: []string{"Tea estates", "Eravikulam National Park", "Top Station"},
		AvgBudget:  22000,
	},
	{
		ID: "manali", Name: "Manali", Region: "north",
		Tagline:    "Himalayan valleys and adventure sports",
		BestSeason: "March to June",
		Highlights: []string{"Solang Valley", "Old Manali", "Rohtang Pass"},
		AvgBudget:  28000,
	},
	{
		ID: "rishikesh", Name: "Rishikesh", Region: "north",
		Tagline:    "Yoga, rafting, and the Ganga aarti",
		BestSeason: "September to April",
		Highlights: []string{"Laxman Jhula", "River rafting", "Evening aarti"},
		AvgBudget:  18000,
	},
	{
		ID: "udaipur", Name: "Udaipur", Region: "north",
		Tagline:    "Lakes and white marble palaces",
		BestSeason: "September to March",
		Highlights: []string{"Lake Pichola", "City Palace", "Sajjangarh"},
		AvgBudget:  27000,
	},
	{
		ID: "varkala", Name: "Varkala", Region: "coastal",
		Tagline:    "Cliffside cafes over the Arabian Sea",
		BestSeason: "November to March",
		Highlights: []string{"Varkala Cliff", "Papanasam Beach", "Jatayu Earth Centre"},
		AvgBudget:  20000,
	},
	{
		ID: "ladakh", Name: "Ladakh", Region: "north",
		Tagline:    "High-altitude desert and monasteries",
		BestSeason: "June to September",
		Highlights: []string{"Pangong Lake", "Nubra Valley", "Thiksey Monastery"},
		AvgBudget:  45000,
	},
}

// packages is the bundled tour-package list, in display order.
var packages = []domain.Package{
	{
		ID: "goa-beach-break", Name: "Goa Beach Break", Destination: "Goa",
		DurationDays: 4, Price: 18000, Tier: domain.BudgetTierBudget,
		Inclusions: []string{"3 nights stay", "Breakfast", "Airport transfers"},
	},
	{
		ID: "rajasthan-royal-circuit", Name: "Rajasthan Royal Circuit", Destination: "Jaipur",
		DurationDays: 7, Price: 52000, Tier: domain.BudgetTierMedium,
		Inclusions: []string{"6 nights stay", "All meals", "Guided fort tours", "Intercity cab"},
	},
	{
		ID: "kerala-backwaters", Name: "Kerala Backwaters Escape", Destination: "Alleppey",
		DurationDays: 5, Price: 38000, Tier: domain.BudgetTierMedium,
		Inclusions: []string{"Houseboat night", "4 nights stay", "Breakfast and dinner"},
	},
	{
		ID: "ladakh-expedition", Name: "Ladakh Expedition", Destination: "Ladakh",
		DurationDays: 8, Price: 95000, Tier: domain.BudgetTierLuxury,
		Inclusions: []string{"7 nights stay", "All meals", "Inner line permits", "Oxygen support"},
	},
	{
		ID: "rishikesh-adventure", Name: "Rishikesh Adventure Weekend", Destination: "Rishikesh",
		DurationDays: 3, Price: 12000, Tier: domain.BudgetTierBudget,
		Inclusions: []string{"2 nights camp stay", "Rafting session", "Bonfire dinner"},
	},
}

// Destinations returns the bundled destination gallery in its fixed order.
// The slice is copied so callers cannot mutate the dataset.
func Destinations() []domain.Destination {
	out := make([]domain.Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Packages returns the bundled package list in its fixed order.
func Packages() []domain.Package {
	out := make([]domain.Package, len(packages))
	copy(out, packages)
	return out
}
