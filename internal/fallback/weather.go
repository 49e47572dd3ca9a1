package fallback

import (
	"strings"
	"time"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// Region lists for the coarse climate lookup. Matching is by substring so
// "Old Goa" and "North Goa" both land in the coastal bucket.
var (
	northPlaces = []string{
		"delhi", "agra", "jaipur", "udaipur", "jodhpur", "amritsar",
		"shimla", "manali", "rishikesh", "leh", "ladakh", "varanasi",
	}
	southPlaces = []string{
		"bengaluru", "bangalore", "mysore", "chennai", "madurai",
		"hampi", "ooty", "kodaikanal", "munnar", "coorg",
	}
	coastalPlaces = []string{
		"goa", "mumbai", "kochi", "alleppey", "varkala", "gokarna",
		"pondicherry", "andaman", "kovalam",
	}
)

// seasonKey buckets months into the four Indian seasonal windows.
type seasonKey string

const (
	seasonWinter      seasonKey = "winter"       // Dec–Feb
	seasonSummer      seasonKey = "summer"       // Mar–May
	seasonMonsoon     seasonKey = "monsoon"      // Jun–Sep
	seasonPostMonsoon seasonKey = "post-monsoon" // Oct–Nov
)

type climate struct {
	minC, maxC int
	humidity   string
	wind       string
}

// climateTable holds the coarse temperature band per region and season.
var climateTable = map[string]map[seasonKey]climate{
	"north": {
		seasonWinter:      {5, 20, "low", "calm"},
		seasonSummer:      {25, 42, "low", "hot and dry"},
		seasonMonsoon:     {24, 34, "high", "gusty"},
		seasonPostMonsoon: {15, 30, "moderate", "light breeze"},
	},
	"south": {
		seasonWinter:      {18, 28, "moderate", "light breeze"},
		seasonSummer:      {24, 38, "moderate", "warm breeze"},
		seasonMonsoon:     {22, 30, "high", "gusty"},
		seasonPostMonsoon: {20, 30, "moderate", "light breeze"},
	},
	"coastal": {
		seasonWinter:      {20, 32, "moderate", "sea breeze"},
		seasonSummer:      {26, 35, "high", "humid breeze"},
		seasonMonsoon:     {24, 30, "very high", "strong onshore winds"},
		seasonPostMonsoon: {23, 33, "high", "sea breeze"},
	},
}

// crowdTable is the coarse crowd estimate per season.
var crowdTable = map[seasonKey]string{
	seasonWinter:      "high",
	seasonSummer:      "moderate",
	seasonMonsoon:     "low",
	seasonPostMonsoon: "high",
}

// Weather produces a coarse seasonal estimate for the destination in the
// given month. Destinations matching none of the region lists get a generic
// moderate-climate estimate.
func Weather(destination string, month time.Month) domain.WeatherOutlook {
	season := seasonOf(month)
	region := regionOf(destination)

	c, ok := climateTable[region][season]
	if !ok {
		c = climate{18, 30, "moderate", "light breeze"}
	}
	return domain.WeatherOutlook{
		Season:     string(season),
		TempMinC:   c.minC,
		TempMaxC:   c.maxC,
		Humidity:   c.humidity,
		Wind:       c.wind,
		CrowdLevel: crowdTable[season],
	}
}

// seasonOf maps a calendar month to its seasonal window.
func seasonOf(m time.Month) seasonKey {
	switch {
	case m == time.December || m <= time.February:
		return seasonWinter
	case m <= time.May:
		return seasonSummer
	case m <= time.September:
		return seasonMonsoon
	default:
		return seasonPostMonsoon
	}
}

// regionOf matches the destination against the region lists by substring,
// case-insensitively. Returns "" when nothing matches.
func regionOf(destination string) string {
	d := strings.ToLower(destination)
	for _, p := range northPlaces {
		if strings.Contains(d, p) {
			return "north"
		}
	}
	for _, p := range southPlaces {
		if strings.Contains(d, p) {
			return "south"
		}
	}
	for _, p := range coastalPlaces {
		if strings.Contains(d, p) {
			return "coastal"
		}
	}
	return ""
}
