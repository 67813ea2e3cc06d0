package planner

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tripwise/budget"
	"tripwise/groq"
	"tripwise/models"
	"tripwise/utils"
)

// Generation-call tuning for the itinerary variant: runs hot and long
// compared to the fallback data fills.
const (
	itineraryTemperature = 0.72
	itineraryMaxTokens   = 8000
)

const (
	minDays = 1
	maxDays = 30
)

const placeholderHeroImage = "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?auto=format&fit=crop&w=1920&q=90"

// Engine runs the generation pipeline: validate, budget, context,
// prompt, generate, validate output, assemble, persist. All collaborators
// are injected so tests can substitute the generator and store.
type Engine struct {
	Store Store
	Gen   Generator
	Model string
}

func NewEngine(store Store, gen Generator, model string) *Engine {
	return &Engine{Store: store, Gen: gen, Model: model}
}

// GeneratePlan produces, persists and returns a complete itinerary.
// Either a schema-valid itinerary comes back or the request fails whole;
// no partial plan is ever returned.
func (e *Engine) GeneratePlan(ctx context.Context, req models.TripRequest, userID string) (*models.Itinerary, *Meta, error) {
	tier, err := validateRequest(&req)
	if err != nil {
		return nil, nil, err
	}

	plan, err := budget.Calculate(req.Days, req.Adults, req.Children, req.DailyBudgetPerPerson, tier)
	if err != nil {
		return nil, nil, &ValidationError{Msg: err.Error()}
	}

	dest, err := e.Store.FindDestinationByName(ctx, req.Destination)
	if err != nil {
		return nil, nil, fmt.Errorf("destination lookup failed: %w", err)
	}

	gctx, err := AssembleContext(ctx, e.Store, dest, tier)
	if err != nil {
		return nil, nil, fmt.Errorf("context assembly failed: %w", err)
	}

	system, prompt := ComposeItineraryPrompt(req, tier, plan, gctx)

	result, err := e.Gen.Generate(ctx, groq.Request{
		System:      system,
		Prompt:      prompt,
		Temperature: itineraryTemperature,
		MaxTokens:   itineraryMaxTokens,
	})
	if err != nil {
		return nil, nil, &UpstreamError{Err: err}
	}

	gen, err := ParseItinerary(result.Text)
	if err != nil {
		log.Printf("[planner] unusable model output: %v (first 200 bytes: %.200s)", err, result.Text)
		return nil, nil, err
	}

	destinationID := ""
	if dest != nil {
		destinationID = dest.DestinationID
	} else {
		destinationID, err = e.createPlaceholderDestination(ctx, req.Destination)
		if err != nil {
			return nil, nil, fmt.Errorf("placeholder destination failed: %w", err)
		}
	}

	it, meta := BuildItinerary(req, tier, plan, gctx, gen, userID, destinationID, e.Model, result.Elapsed)

	if err := e.Store.InsertItinerary(ctx, it); err != nil {
		return nil, nil, fmt.Errorf("itinerary save failed: %w", err)
	}

	log.Printf("[planner] generated %q (%d days, %s tier) in %dms", it.Title, it.TotalDays, tier, meta.GenerationTimeMs)
	return it, meta, nil
}

// validateRequest rejects bad trip parameters before any budget math or
// generation work begins, and normalizes the tier in place.
func validateRequest(req *models.TripRequest) (models.Tier, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	req.OriginCity = strings.TrimSpace(req.OriginCity)

	if req.Destination == "" {
		return "", validationf("destination is required")
	}
	if req.OriginCity == "" {
		return "", validationf("originCity is required")
	}
	if req.Days < minDays || req.Days > maxDays {
		return "", validationf("days must be between %d and %d", minDays, maxDays)
	}
	if req.Adults < 1 {
		return "", validationf("at least 1 adult is required")
	}
	if req.Children < 0 {
		return "", validationf("children cannot be negative")
	}
	if req.Tier == "" {
		req.Tier = string(models.TierStandard)
	}
	tier, err := models.ParseTier(strings.ToLower(req.Tier))
	if err != nil {
		return "", &ValidationError{Msg: err.Error()}
	}
	if req.DailyBudgetPerPerson == 0 {
		req.DailyBudgetPerPerson = 3000
	}
	if req.DailyBudgetPerPerson < 0 {
		return "", validationf("dailyBudgetPerPerson must be positive")
	}
	return tier, nil
}

// createPlaceholderDestination keeps the foreign reference intact when an
// itinerary is generated for a place the store has never seen. The slug
// gets a timestamp suffix so it never collides with a later curated or
// fallback-filled record for the same city.
func (e *Engine) createPlaceholderDestination(ctx context.Context, destination string) (string, error) {
	name := utils.ShortName(destination)
	state := "India"
	if parts := strings.SplitN(destination, ",", 2); len(parts) == 2 {
		if s := strings.TrimSpace(parts[1]); s != "" {
			state = s
		}
	}

	d := &models.Destination{
		DestinationID: utils.GetUUID(),
		Name:          name,
		Slug:          fmt.Sprintf("%s-%d", utils.Slugify(name), time.Now().UnixNano()),
		State:         state,
		Region:        "India",
		Category:      "Heritage",
		Description:   "AI-generated destination: " + destination,
		HeroImageURL:  placeholderHeroImage,
		BestSeason:    DefaultBestSeason,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := e.Store.CreateDestination(ctx, d); err != nil {
		return "", err
	}
	return d.DestinationID, nil
}
