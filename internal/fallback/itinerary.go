package fallback

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// defaultDayCount is used when no digits appear in the duration string.
const defaultDayCount = 5

// dayThemes is the fixed ordered sequence of daily themes. Days beyond the
// list reuse a generic "Exploring {destination}" theme.
var dayThemes = []string{
	"Arrival & Orientation",
	"Heritage & Culture",
	"Nature & Adventure",
	"Markets & Shopping",
	"Relaxation",
	"Hidden Gems",
	"Departure",
}

// Itinerary builds one themed, time-boxed entry per day of the trip.
// The day count is the first integer parsed out of the free-form duration
// string ("5 days" → 5); a duration with no digits yields the default of 5.
func Itinerary(req domain.TripRequest) []domain.ItineraryDay {
	count := parseDayCount(req.Duration)

	days := make([]domain.ItineraryDay, 0, count)
	for d := 1; d <= count; d++ {
		theme := fmt.Sprintf("Exploring %s", req.Destination)
		if d <= len(dayThemes) {
			theme = dayThemes[d-1]
		}
		days = append(days, domain.ItineraryDay{
			Day:        d,
			Theme:      theme,
			Activities: dayActivities(d, req.Destination),
		})
	}
	return days
}

// dayActivities returns the fixed daily template: morning sightseeing,
// midday local-cuisine meal, afternoon cultural activity, evening viewpoint.
// Day 1 activities are located at the primary destination; later days use
// generic placeholder locations.
func dayActivities(day int, destination string) []domain.Activity {
	loc := func(generic string) string {
		if day == 1 {
			return destination
		}
		return generic
	}
	return []domain.Activity{
		{Time: "9:00 AM", Description: "Morning sightseeing", Location: loc("City centre")},
		{Time: "1:00 PM", Description: "Lunch featuring local cuisine", Location: loc("Local market")},
		{Time: "3:30 PM", Description: "Cultural visit", Location: loc("Heritage quarter")},
		{Time: "7:00 PM", Description: "Evening leisure at a viewpoint", Location: loc("Scenic viewpoint")},
	}
}

// parseDayCount extracts the first integer from the duration string.
func parseDayCount(duration string) int {
	start := -1
	for i, r := range duration {
		if unicode.IsDigit(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return defaultDayCount
	}

	end := start
	for end < len(duration) && duration[end] >= '0' && duration[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(duration[start:end])
	if err != nil || n < 1 {
		return defaultDayCount
	}
	return n
}
