package planner

import (
	"fmt"
	"strings"

	"tripwise/budget"
	"tripwise/models"
	"tripwise/utils"
)

const itinerarySystemPrompt = `You are TripWise, an expert Indian travel planner.
You ALWAYS respond with valid raw JSON only.
No markdown, no backticks, no prose - ONLY the JSON object.
All number values must be plain integers, not strings.`

var tierDescriptions = map[models.Tier]string{
	models.TierEconomy:  "budget-friendly - local transport, guesthouses, street food and dhabas. Value for money.",
	models.TierStandard: "comfortable - 3-4 star hotels, private transport, curated mid-range restaurants.",
	models.TierLuxury:   "premium - heritage palace hotels, chauffeur SUV, fine dining, private guides, exclusive experiences.",
}

// ComposeItineraryPrompt renders the full generation request. It is a
// pure function: the same request, budget plan and context always yield
// the same prompt. The numeric answer key (tier totals, nightly hotel
// budget, per-meal budget) is baked directly into the requested schema so
// the model only fills narrative detail around fixed numbers.
func ComposeItineraryPrompt(req models.TripRequest, tier models.Tier, plan budget.Plan, c Context) (system, prompt string) {
	shortName := utils.ShortName(req.Destination)

	eco := plan.Breakdown(models.TierEconomy)
	std := plan.Breakdown(models.TierStandard)
	lux := plan.Breakdown(models.TierLuxury)

	var b strings.Builder

	fmt.Fprintf(&b, "Generate a complete %d-day travel itinerary for %d adult%s", req.Days, req.Adults, plural(req.Adults))
	if req.Children > 0 {
		fmt.Fprintf(&b, " and %d child%s", req.Children, pluralChildren(req.Children))
	}
	b.WriteString(".\n\nTRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- From: %s\n", req.OriginCity)
	fmt.Fprintf(&b, "- Duration: %d days\n", req.Days)
	fmt.Fprintf(&b, "- Tier: %s - %s\n", tier, tierDescriptions[tier])
	fmt.Fprintf(&b, "- Daily budget per person: Rs %d\n", req.DailyBudgetPerPerson)
	fmt.Fprintf(&b, "- Total hotel budget per night: ~Rs %d (for all %d adults)\n", plan.NightlyHotelBudget, req.Adults)
	fmt.Fprintf(&b, "- Meal budget per person per meal: ~Rs %d\n", plan.MealBudgetPerPerson)
	fmt.Fprintf(&b, "- Interests: %s\n", interestList(req.Interests))

	writeContextBlocks(&b, c)

	b.WriteString("\nCRITICAL RULES:\n")
	b.WriteString("1. For every FOOD slot: suggest 2-3 SPECIFIC restaurants by name with cuisine type and price estimate. Never say \"local dhaba\" or \"any restaurant\". Always name real places.\n")
	fmt.Fprintf(&b, "2. For hotel suggestions: suggest 3 specific hotels with nightly price that fits Rs %d/night budget. Include hotel type (boutique/heritage/chain) and a 1-line selling point.\n", plan.NightlyHotelBudget)
	b.WriteString("3. Food slots must have a \"suggestions\" array with named restaurant options the user can choose from.\n")
	b.WriteString("4. Hotel section must have a \"hotelSuggestions\" array with 3 concrete hotel options.\n")
	fmt.Fprintf(&b, "5. Costs must be realistic for %s tier in India. Economy = budget guesthouses + street food. Standard = 3-4 star + good restaurants. Luxury = 5-star palace hotels + fine dining.\n", tier)

	b.WriteString("\nReturn ONLY this JSON:\n\n")
	writeSchemaSkeleton(&b, shortName, plan, eco, std, lux)

	b.WriteString("\nSTRICT RULES - follow ALL of these:\n")
	fmt.Fprintf(&b, "1. Generate ALL %d days (dayNumber 1 through %d). Never generate fewer days.\n", req.Days, req.Days)
	fmt.Fprintf(&b, "2. The \"title\" field MUST contain the word %q - never use another city name.\n", shortName)
	fmt.Fprintf(&b, "3. Every food slot MUST have 2-3 named restaurant suggestions specific to %s.\n", req.Destination)
	fmt.Fprintf(&b, "4. Hotels in hotelSuggestions must be named properties located in %s.\n", req.Destination)
	fmt.Fprintf(&b, "5. Attractions and landmarks must be real places IN %s - not from other cities.\n", req.Destination)
	b.WriteString("6. Never use generic names like \"Local Restaurant\" or \"Budget Hotel\".\n")

	return itinerarySystemPrompt, b.String()
}

// writeContextBlocks renders the grounding facts from the store. Absent
// data degrades to an instruction to use general knowledge of the place.
func writeContextBlocks(b *strings.Builder, c Context) {
	if len(c.Attractions) > 0 {
		b.WriteString("\nREAL ATTRACTIONS (use these first):\n")
		for _, a := range c.Attractions {
			mins := a.VisitDurationMins
			if mins == 0 {
				mins = 90
			}
			fmt.Fprintf(b, "- %s (%s), entry Rs %d, ~%d min\n", a.Name, a.Category, a.EntryFeeIndian, mins)
		}
	}
	if len(c.Restaurants) > 0 {
		b.WriteString("\nREAL RESTAURANTS AT THIS DESTINATION (use these for food suggestions):\n")
		for _, r := range c.Restaurants {
			veg := "Non-veg"
			if r.IsVeg {
				veg = "Veg"
			}
			fmt.Fprintf(b, "- %s | %s | %s | ~Rs %d/person | %s\n", r.Name, r.CuisineType, r.PriceRange, r.PricePerPerson, veg)
		}
	}
	if len(c.Hotels) > 0 {
		b.WriteString("\nREAL HOTELS AT THIS DESTINATION (use these for hotel suggestions):\n")
		for _, h := range c.Hotels {
			fmt.Fprintf(b, "- %s | Rs %d/night | %s tier | %.1f rating\n", h.Name, h.PricePerNight, h.Tier, h.Rating)
		}
	}
	if len(c.Attractions) == 0 && len(c.Restaurants) == 0 && len(c.Hotels) == 0 {
		b.WriteString("\n(No local database records for this destination - use your general knowledge of the place. Every name must still be a real, specific establishment.)\n")
	}
}

func writeSchemaSkeleton(b *strings.Builder, shortName string, plan budget.Plan, eco, std, lux models.BudgetBreakdown) {
	meal := plan.MealBudgetPerPerson
	nightly := plan.NightlyHotelBudget

	b.WriteString("{\n")
	fmt.Fprintf(b, "  \"title\": \"REQUIRED: a catchy title that explicitly names %s - e.g. 'Sun, Sand & Spice: %s in 4 Days'\",\n", shortName, shortName)
	b.WriteString("  \"bestTimeToVisit\": \"months e.g. October to March\",\n")
	b.WriteString("  \"travelTips\": [\"tip1\", \"tip2\", \"tip3\", \"tip4\", \"tip5\"],\n")
	b.WriteString("  \"localPhrases\": [\n    {\"phrase\": \"local phrase\", \"meaning\": \"English meaning\"},\n    {\"phrase\": \"local phrase\", \"meaning\": \"English meaning\"},\n    {\"phrase\": \"local phrase\", \"meaning\": \"English meaning\"}\n  ],\n")
	b.WriteString("  \"budgetEstimate\": {\n")
	writeBudgetLine(b, "economy", eco, ",")
	writeBudgetLine(b, "standard", std, ",")
	writeBudgetLine(b, "luxury", lux, "")
	b.WriteString("  },\n")
	fmt.Fprintf(b, `  "hotelSuggestions": [
    {"name": "Specific Hotel Name", "type": "Heritage Haveli / Boutique / Business / Luxury Resort", "pricePerNight": %d, "rating": 4, "whyStayHere": "1 sentence - what makes this special", "location": "area/neighborhood name", "isRecommended": true},
    {"name": "Second Hotel Name", "type": "type", "pricePerNight": %d, "rating": 4, "whyStayHere": "1 sentence selling point", "location": "area name", "isRecommended": false},
    {"name": "Third Hotel Name", "type": "type", "pricePerNight": %d, "rating": 5, "whyStayHere": "1 sentence selling point", "location": "area name", "isRecommended": false}
  ],
`, nightly, scale(nightly, 0.82), scale(nightly, 1.18))
	fmt.Fprintf(b, `  "days": [
    {
      "dayNumber": 1,
      "title": "day title e.g. Forts, Markets & Street Food",
      "summary": "1-2 sentence day overview",
      "slots": [
        {"slotOrder": 1, "timeLabel": "8:00 AM", "type": "hotel", "title": "Check In & Settle", "description": "Arrive and check into your hotel.", "durationMins": 60, "estimatedCost": 0, "aiTip": "specific insider tip", "suggestions": []},
        {"slotOrder": 2, "timeLabel": "9:30 AM", "type": "attraction", "title": "Specific Attraction Name", "description": "What to see, what to look for, why it matters.", "durationMins": 120, "estimatedCost": 200, "aiTip": "insider tip e.g. go early to avoid crowds", "suggestions": []},
        {"slotOrder": 3, "timeLabel": "1:00 PM", "type": "food", "title": "Lunch", "description": "Great lunch options near your morning attractions.", "durationMins": 60, "estimatedCost": %d, "aiTip": "specific food tip", "suggestions": [
          {"name": "Specific Restaurant Name 1", "cuisine": "e.g. Rajasthani Thali", "pricePerPerson": %d, "mustOrder": "specific dish name", "vibe": "e.g. rooftop, heritage, street-side", "isVeg": true},
          {"name": "Specific Restaurant Name 2", "cuisine": "e.g. North Indian", "pricePerPerson": %d, "mustOrder": "specific dish", "vibe": "e.g. family-friendly, casual", "isVeg": false}
        ]},
        {"slotOrder": 4, "timeLabel": "3:00 PM", "type": "attraction", "title": "Specific Attraction", "description": "Description of what to do and see.", "durationMins": 90, "estimatedCost": 150, "aiTip": "insider tip", "suggestions": []},
        {"slotOrder": 5, "timeLabel": "7:30 PM", "type": "food", "title": "Dinner", "description": "Evening dining options.", "durationMins": 90, "estimatedCost": %d, "aiTip": "dinner tip", "suggestions": [
          {"name": "Specific Restaurant Name 1", "cuisine": "cuisine type", "pricePerPerson": %d, "mustOrder": "dish name", "vibe": "e.g. romantic rooftop, lake view", "isVeg": false},
          {"name": "Specific Restaurant Name 2", "cuisine": "cuisine", "pricePerPerson": %d, "mustOrder": "dish", "vibe": "vibe", "isVeg": true}
        ]}
      ]
    }
  ]
}
`, meal, meal, scale(meal, 0.8), scale(meal, 1.4), scale(meal, 1.4), scale(meal, 1.1))
}

func writeBudgetLine(b *strings.Builder, name string, bd models.BudgetBreakdown, sep string) {
	fmt.Fprintf(b, "    %q: {\"accommodation\": %d, \"food\": %d, \"transport\": %d, \"entryFees\": %d, \"misc\": %d, \"total\": %d, \"perPerson\": %d}%s\n",
		name, bd.Accommodation, bd.Food, bd.Transport, bd.EntryFees, bd.Miscellaneous, bd.Total, bd.PerPerson, sep)
}

func interestList(interests []string) string {
	if len(interests) == 0 {
		return "culture, food, sightseeing"
	}
	return strings.Join(interests, ", ")
}

func scale(n int, f float64) int {
	return int(float64(n)*f + 0.5)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func pluralChildren(n int) string {
	if n == 1 {
		return ""
	}
	return "ren"
}
