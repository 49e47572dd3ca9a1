package domain

// TripPlan is a structurally complete trip plan. Both the generative content
// service (parsed from its JSON response) and the offline fallback generator
// produce this shape, so downstream consumers never branch on the source.
type TripPlan struct {
	Destination    string                `json:"destination"`
	Itinerary      []ItineraryDay        `json:"itinerary"`
	Budget         BudgetBreakdown       `json:"budget"`
	Weather        WeatherOutlook        `json:"weather"`
	Accommodations []AccommodationOption `json:"accommodations"`
	PackingList    []string              `json:"packing_list"`
	TransportGuide []TransportOption     `json:"transport_guide"`
	Cuisine        []string              `json:"cuisine"`
}

// ItineraryDay is one day of the plan with a theme and time-boxed activities.
type ItineraryDay struct {
	Day        int        `json:"day"` // 1-indexed
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

// Activity is a single time-boxed entry in a day.
type Activity struct {
	Time        string `json:"time"` // display string, e.g. "9:00 AM"
	Description string `json:"description"`
	Location    string `json:"location"`
}

// BudgetBreakdown allocates the trip total across fixed categories.
// All amounts are whole rupees and the categories sum exactly to Total.
type BudgetBreakdown struct {
	Total         int `json:"total"`
	Accommodation int `json:"accommodation"` // 35%
	Food          int `json:"food"`          // 25%
	Transport     int `json:"transport"`     // 20%
	Activities    int `json:"activities"`    // 15%
	Miscellaneous int `json:"miscellaneous"` // 5%
}

// WeatherOutlook is a coarse seasonal estimate for the destination in the
// month the plan was generated.
type WeatherOutlook struct {
	Season     string `json:"season"` // winter, summer, monsoon, post-monsoon
	TempMinC   int    `json:"temp_min_c"`
	TempMaxC   int    `json:"temp_max_c"`
	Humidity   string `json:"humidity"`
	Wind       string `json:"wind"`
	CrowdLevel string `json:"crowd_level"`
}

// AccommodationOption is one suggested place type for the trip's budget tier.
type AccommodationOption struct {
	Name          string `json:"name"`
	Type          string `json:"type"`           // hostel, hotel, resort, ...
	PricePerNight int    `json:"price_per_night"` // whole rupees
	Notes         string `json:"notes,omitempty"`
}

// TransportOption is one entry in the static getting-around guide.
type TransportOption struct {
	Mode  string `json:"mode"`
	Notes string `json:"notes"`
}
