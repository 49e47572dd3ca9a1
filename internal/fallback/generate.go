// Package fallback synthesizes a complete trip plan with no remote
// dependency. It is the offline substitute for the generative content
// service: when that call fails or times out, the arbitrator serves a plan
// built here instead.
//
// Every function in this package is a pure function of its inputs — calling
// with identical input yields byte-identical output. Anything time-dependent
// (the weather outlook) takes the month as an explicit argument.
package fallback

import (
	"time"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// Generate assembles a structurally complete plan for the request.
// The result has the same shape a successful generative call produces, so
// downstream consumers need no branching.
func Generate(req domain.TripRequest, month time.Month) domain.TripPlan {
	return domain.TripPlan{
		Destination:    req.Destination,
		Itinerary:      Itinerary(req),
		Budget:         Budget(req.BudgetTotal()),
		Weather:        Weather(req.Destination, month),
		Accommodations: Accommodations(req.Budget, req.Destination),
		PackingList:    PackingList(),
		TransportGuide: TransportGuide(req.FromLocation, req.Destination),
		Cuisine:        Cuisine(req.Destination),
	}
}
