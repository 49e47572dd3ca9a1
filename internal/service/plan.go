package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/arbitrate"
	"github.com/asharma/yatra-planner/backend/internal/domain"
	"github.com/asharma/yatra-planner/backend/internal/fallback"
	"github.com/asharma/yatra-planner/backend/internal/remote"
)

// planSchema asks the generative service for structured JSON matching
// domain.TripPlan rather than free text.
var planSchema = map[string]any{
	"type": "object",
	"required": []string{
		"destination", "itinerary", "budget", "weather",
		"accommodations", "packing_list", "transport_guide", "cuisine",
	},
}

// GeneratePlan produces a complete trip plan for the request. The remote
// generative call is raced against the configured bound; on failure or
// timeout the deterministic offline generator serves an equivalent-shaped
// plan and the degraded flag is set.
//
// When the request names a trip, the winning plan is saved onto that trip's
// ai_suggestions field; a failure there is logged but does not fail the call.
func (p *Planner) GeneratePlan(ctx context.Context, req domain.TripRequest) (domain.TripPlan, bool, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return domain.TripPlan{}, false, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if req.Travelers < 1 {
		return domain.TripPlan{}, false, fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}

	month := p.now().UTC().Month()

	plan, degraded, err := arbitrate.Execute(ctx, p.planWait,
		func(ctx context.Context) (domain.TripPlan, error) {
			return p.invokeGenerative(ctx, req)
		},
		func(_ context.Context) (domain.TripPlan, error) {
			return fallback.Generate(req, month), nil
		},
		p.logger)
	if err != nil {
		return domain.TripPlan{}, degraded, err
	}

	if req.TripID != uuid.Nil {
		p.savePlanOnTrip(ctx, req.TripID, plan)
	}
	return plan, degraded, nil
}

// invokeGenerative calls the generative service and parses its response into
// a TripPlan. An unparseable or structurally incomplete response is reported
// as a malformed remote response, which routes the arbitrator offline.
func (p *Planner) invokeGenerative(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error) {
	prompt, err := buildPlanPrompt(req)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.Planner.GeneratePlan: build prompt: %w", err)
	}

	raw, err := p.genai.Invoke(ctx, prompt, remote.InvokeOptions{
		AugmentWithExternalContext: true,
		ResponseSchema:             planSchema,
	})
	if err != nil {
		return domain.TripPlan{}, err
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return domain.TripPlan{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if len(plan.Itinerary) == 0 || plan.Budget.Total <= 0 {
		return domain.TripPlan{}, fmt.Errorf("%w: plan missing itinerary or budget", domain.ErrMalformedResponse)
	}
	return plan, nil
}

// savePlanOnTrip stores the serialized plan onto the trip's ai_suggestions.
func (p *Planner) savePlanOnTrip(ctx context.Context, tripID uuid.UUID, plan domain.TripPlan) {
	raw, err := json.Marshal(plan)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to serialize plan for trip", "trip_id", tripID, "error", err)
		return
	}
	suggestions := string(raw)
	if _, err := p.trips.UpdateTrip(ctx, tripID, domain.TripUpdate{AISuggestions: &suggestions}); err != nil {
		p.logger.WarnContext(ctx, "failed to save plan onto trip", "trip_id", tripID, "error", err)
	}
}

// buildPlanPrompt serializes the trip request as JSON context under a short
// instruction, so the generative backend sees exactly what the user asked for.
func buildPlanPrompt(req domain.TripRequest) (string, error) {
	reqJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Plan a complete trip for the request below. ")
	b.WriteString("Respond with JSON containing a day-by-day itinerary, a budget breakdown in whole rupees, ")
	b.WriteString("a weather outlook, accommodation options, a packing list, a transport guide, and local cuisine.\n\n")
	b.WriteString("Trip request:\n")
	b.Write(reqJSON)
	return b.String(), nil
}
