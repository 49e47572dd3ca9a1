package fallback

import (
	"fmt"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// Accommodations returns the fixed options for the trip's budget tier with
// the destination substituted into the display notes. An empty or unknown
// tier gets the medium options.
func Accommodations(tier domain.BudgetTier, destination string) []domain.AccommodationOption {
	near := fmt.Sprintf("near the centre of %s", destination)

	switch tier {
	case domain.BudgetTierBudget:
		return []domain.AccommodationOption{
			{Name: "Backpacker hostel", Type: "hostel", PricePerNight: 800, Notes: near},
			{Name: "Family guesthouse", Type: "guesthouse", PricePerNight: 1500, Notes: near},
			{Name: "Budget hotel", Type: "hotel", PricePerNight: 2200, Notes: near},
		}
	case domain.BudgetTierLuxury:
		return []domain.AccommodationOption{
			{Name: "Five-star hotel", Type: "hotel", PricePerNight: 9000, Notes: near},
			{Name: "Heritage palace stay", Type: "heritage", PricePerNight: 12000, Notes: near},
			{Name: "Luxury resort", Type: "resort", PricePerNight: 15000, Notes: near},
		}
	default:
		return []domain.AccommodationOption{
			{Name: "Three-star hotel", Type: "hotel", PricePerNight: 3500, Notes: near},
			{Name: "Boutique homestay", Type: "homestay", PricePerNight: 4000, Notes: near},
			{Name: "Serviced apartment", Type: "apartment", PricePerNight: 4800, Notes: near},
		}
	}
}

// PackingList returns the static packing checklist.
func PackingList() []string {
	return []string{
		"Government ID and copies",
		"Comfortable walking shoes",
		"Light cotton clothing",
		"A warm layer for evenings",
		"Sunscreen and sunglasses",
		"Reusable water bottle",
		"Power bank and chargers",
		"Basic first-aid kit",
		"Rain cover or compact umbrella",
	}
}

// TransportGuide returns the static getting-there-and-around guide with the
// route substituted into the display strings.
func TransportGuide(from, destination string) []domain.TransportOption {
	route := destination
	if from != "" {
		route = fmt.Sprintf("%s to %s", from, destination)
	}
	return []domain.TransportOption{
		{Mode: "train", Notes: fmt.Sprintf("Express trains cover %s; book sleeper or AC class in advance", route)},
		{Mode: "flight", Notes: fmt.Sprintf("Fastest option for %s; fares rise close to the travel date", route)},
		{Mode: "bus", Notes: fmt.Sprintf("Overnight buses run %s; pick a Volvo or sleeper service", route)},
		{Mode: "car", Notes: fmt.Sprintf("Self-drive or cab for %s gives flexibility for stops along the way", route)},
		{Mode: "local", Notes: fmt.Sprintf("Inside %s use autos, metro where available, and prepaid cabs", destination)},
	}
}

// Cuisine returns the static must-try food list with the destination
// substituted into the display strings.
func Cuisine(destination string) []string {
	return []string{
		fmt.Sprintf("Street food walk through the old quarter of %s", destination),
		fmt.Sprintf("Regional thali at a family-run eatery in %s", destination),
		"Masala chai and local sweets at a roadside stall",
		"Seasonal fruit from the morning market",
		fmt.Sprintf("A cooking class featuring dishes native to %s", destination),
	}
}
