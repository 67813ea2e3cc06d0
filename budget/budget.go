package budget

import (
	"fmt"
	"math"

	"tripwise/models"
)

// Tier multipliers applied to the standard full-trip budget.
var multipliers = map[models.Tier]float64{
	models.TierEconomy:  0.55,
	models.TierStandard: 1.0,
	models.TierLuxury:   2.3,
}

// Category shares per tier. Accommodation share rises with tier while
// transport and entry fees shrink. Each row sums to 1.0; miscellaneous
// still absorbs per-category rounding residue so components always sum
// to the tier total exactly.
type shares struct {
	accommodation, food, transport, entryFees float64
}

var categoryShares = map[models.Tier]shares{
	models.TierEconomy:  {0.40, 0.25, 0.20, 0.10},
	models.TierStandard: {0.42, 0.25, 0.20, 0.08},
	models.TierLuxury:   {0.45, 0.25, 0.18, 0.07},
}

// Fractions of the daily per-person budget used as prompt anchors.
var nightlyHotelFraction = map[models.Tier]float64{
	models.TierEconomy:  0.40,
	models.TierStandard: 0.45,
	models.TierLuxury:   1.05,
}

var mealFraction = map[models.Tier]float64{
	models.TierEconomy:  0.12,
	models.TierStandard: 0.18,
	models.TierLuxury:   0.28,
}

// Plan is the deterministic budget model for one trip request. All three
// tier breakdowns are computed regardless of the requested tier so the
// stored itinerary can switch tiers without recomputation.
type Plan struct {
	TotalBudget         int // standard-tier full-trip budget
	Breakdowns          []models.BudgetBreakdown
	NightlyHotelBudget  int // requested tier, covers all adults
	MealBudgetPerPerson int // requested tier, per meal
}

// Breakdown returns the computed figures for one tier.
func (p Plan) Breakdown(tier models.Tier) models.BudgetBreakdown {
	for _, b := range p.Breakdowns {
		if b.Tier == tier {
			return b
		}
	}
	return models.BudgetBreakdown{}
}

// Calculate builds the full budget model. Children are weighted at half
// cost; perPerson divides across adults only, so adults >= 1 is required.
func Calculate(days, adults, children, dailyBudgetPerPerson int, tier models.Tier) (Plan, error) {
	if days < 1 {
		return Plan{}, fmt.Errorf("days must be at least 1")
	}
	if adults < 1 {
		return Plan{}, fmt.Errorf("at least 1 adult is required")
	}
	if dailyBudgetPerPerson < 1 {
		return Plan{}, fmt.Errorf("dailyBudgetPerPerson must be positive")
	}
	if _, ok := multipliers[tier]; !ok {
		return Plan{}, fmt.Errorf("unknown tier %q", tier)
	}

	pax := float64(adults) + 0.5*float64(children)
	totalBudget := round(float64(dailyBudgetPerPerson) * float64(days) * pax)

	plan := Plan{
		TotalBudget:         totalBudget,
		NightlyHotelBudget:  round(float64(dailyBudgetPerPerson) * nightlyHotelFraction[tier] * float64(adults)),
		MealBudgetPerPerson: round(float64(dailyBudgetPerPerson) * mealFraction[tier]),
	}

	for _, t := range models.Tiers {
		total := round(float64(totalBudget) * multipliers[t])
		s := categoryShares[t]
		b := models.BudgetBreakdown{
			Tier:          t,
			Accommodation: round(float64(total) * s.accommodation),
			Food:          round(float64(total) * s.food),
			Transport:     round(float64(total) * s.transport),
			EntryFees:     round(float64(total) * s.entryFees),
			Total:         total,
			PerPerson:     round(float64(total) / float64(adults)),
		}
		b.Miscellaneous = total - b.Accommodation - b.Food - b.Transport - b.EntryFees
		plan.Breakdowns = append(plan.Breakdowns, b)
	}

	return plan, nil
}

func round(f float64) int {
	return int(math.Round(f))
}
