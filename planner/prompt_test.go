package planner

import (
	"fmt"
	"testing"

	"tripwise/budget"
	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptFixture(t *testing.T) (models.TripRequest, models.Tier, budget.Plan) {
	t.Helper()
	req := models.TripRequest{
		Destination:          "Jaipur, Rajasthan",
		OriginCity:           "Delhi",
		Days:                 3,
		Adults:               2,
		Tier:                 "standard",
		DailyBudgetPerPerson: 3000,
	}
	plan, err := budget.Calculate(req.Days, req.Adults, req.Children, req.DailyBudgetPerPerson, models.TierStandard)
	require.NoError(t, err)
	return req, models.TierStandard, plan
}

func TestComposePromptIsDeterministic(t *testing.T) {
	req, tier, plan := promptFixture(t)

	sys1, p1 := ComposeItineraryPrompt(req, tier, plan, Context{})
	sys2, p2 := ComposeItineraryPrompt(req, tier, plan, Context{})

	assert.Equal(t, sys1, sys2)
	assert.Equal(t, p1, p2)
}

func TestComposePromptCarriesBudgetAnchors(t *testing.T) {
	req, tier, plan := promptFixture(t)
	_, prompt := ComposeItineraryPrompt(req, tier, plan, Context{})

	// 3 days x 2 adults x Rs 3000 at standard: total 18000, nightly
	// hotel anchor 2700, per-meal anchor 540.
	assert.Contains(t, prompt, "Total hotel budget per night: ~Rs 2700")
	assert.Contains(t, prompt, "Meal budget per person per meal: ~Rs 540")
	assert.Contains(t, prompt, `"total": 18000`)

	// All three tiers appear in the baked-in estimate block.
	for _, tier := range models.Tiers {
		assert.Contains(t, prompt, fmt.Sprintf("%q:", tier))
	}
}

func TestComposePromptDayCountRule(t *testing.T) {
	req, tier, plan := promptFixture(t)
	_, prompt := ComposeItineraryPrompt(req, tier, plan, Context{})

	assert.Contains(t, prompt, "Generate ALL 3 days (dayNumber 1 through 3)")
	assert.Contains(t, prompt, `MUST contain the word "Jaipur"`)
}

func TestComposePromptEmptyContext(t *testing.T) {
	req, tier, plan := promptFixture(t)
	_, prompt := ComposeItineraryPrompt(req, tier, plan, Context{})

	assert.Contains(t, prompt, "No local database records for this destination")
	assert.NotContains(t, prompt, "REAL ATTRACTIONS")
}

func TestComposePromptGroundedContext(t *testing.T) {
	req, tier, plan := promptFixture(t)
	c := Context{
		Attractions: []models.Attraction{
			{Name: "Amber Fort", Category: "Fort", EntryFeeIndian: 100, VisitDurationMins: 120},
		},
		Restaurants: []models.Restaurant{
			{Name: "Laxmi Misthan Bhandar", CuisineType: "Rajasthani", PriceRange: models.PriceBudget, PricePerPerson: 250, IsVeg: true},
		},
		Hotels: []models.Hotel{
			{Name: "Alsisar Haveli", PricePerNight: 4500, Tier: models.TierStandard, Rating: 4.3},
		},
	}

	_, prompt := ComposeItineraryPrompt(req, tier, plan, c)

	assert.Contains(t, prompt, "Amber Fort (Fort), entry Rs 100, ~120 min")
	assert.Contains(t, prompt, "Laxmi Misthan Bhandar | Rajasthani | budget | ~Rs 250/person | Veg")
	assert.Contains(t, prompt, "Alsisar Haveli | Rs 4500/night | standard tier | 4.3 rating")
	assert.NotContains(t, prompt, "No local database records")
}

func TestComposePromptDefaultInterests(t *testing.T) {
	req, tier, plan := promptFixture(t)
	_, prompt := ComposeItineraryPrompt(req, tier, plan, Context{})
	assert.Contains(t, prompt, "Interests: culture, food, sightseeing")

	req.Interests = []string{"history", "photography"}
	_, prompt = ComposeItineraryPrompt(req, tier, plan, Context{})
	assert.Contains(t, prompt, "Interests: history, photography")
}
