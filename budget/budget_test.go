package budget

import (
	"testing"

	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateComponentsSumToTotal(t *testing.T) {
	cases := []struct {
		name                          string
		days, adults, children, daily int
	}{
		{"couple short trip", 3, 2, 0, 3000},
		{"family with kids", 7, 2, 2, 2500},
		{"solo", 1, 1, 0, 1500},
		{"group long trip", 30, 6, 3, 9999},
		{"odd budget", 5, 3, 1, 3333},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := Calculate(tc.days, tc.adults, tc.children, tc.daily, models.TierStandard)
			require.NoError(t, err)
			require.Len(t, plan.Breakdowns, 3)

			for _, b := range plan.Breakdowns {
				sum := b.Accommodation + b.Food + b.Transport + b.EntryFees + b.Miscellaneous
				assert.Equal(t, b.Total, sum, "tier %s components must sum to total", b.Tier)
				assert.Equal(t, round(float64(b.Total)/float64(tc.adults)), b.PerPerson, "tier %s perPerson", b.Tier)
				assert.GreaterOrEqual(t, b.Miscellaneous, 0, "tier %s misc went negative", b.Tier)
			}
		})
	}
}

func TestCalculateTierOrdering(t *testing.T) {
	plan, err := Calculate(4, 2, 1, 4000, models.TierEconomy)
	require.NoError(t, err)

	eco := plan.Breakdown(models.TierEconomy)
	std := plan.Breakdown(models.TierStandard)
	lux := plan.Breakdown(models.TierLuxury)

	assert.Greater(t, lux.Total, std.Total)
	assert.Greater(t, std.Total, eco.Total)
}

func TestCalculateKnownScenario(t *testing.T) {
	// 3 days, 2 adults, ₹3000/person/day -> 18000 standard total.
	plan, err := Calculate(3, 2, 0, 3000, models.TierStandard)
	require.NoError(t, err)

	assert.Equal(t, 18000, plan.TotalBudget)
	std := plan.Breakdown(models.TierStandard)
	assert.Equal(t, 18000, std.Total)
	assert.Equal(t, 9000, std.PerPerson)
	assert.Equal(t, 9900, plan.Breakdown(models.TierEconomy).Total)
	assert.Equal(t, 41400, plan.Breakdown(models.TierLuxury).Total)

	// Standard-tier anchors.
	assert.Equal(t, 2700, plan.NightlyHotelBudget) // 3000 * 0.45 * 2
	assert.Equal(t, 540, plan.MealBudgetPerPerson) // 3000 * 0.18
}

func TestCalculateChildrenWeightedHalf(t *testing.T) {
	withKids, err := Calculate(2, 2, 2, 1000, models.TierStandard)
	require.NoError(t, err)
	// 1000 * 2 days * (2 + 0.5*2) = 6000
	assert.Equal(t, 6000, withKids.TotalBudget)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(3, 0, 0, 3000, models.TierStandard)
	assert.Error(t, err, "zero adults must be rejected before division")

	_, err = Calculate(0, 2, 0, 3000, models.TierStandard)
	assert.Error(t, err)

	_, err = Calculate(3, 2, 0, 3000, models.Tier("premium"))
	assert.Error(t, err)
}

func TestAnchorsVaryByTier(t *testing.T) {
	eco, err := Calculate(3, 2, 0, 3000, models.TierEconomy)
	require.NoError(t, err)
	lux, err := Calculate(3, 2, 0, 3000, models.TierLuxury)
	require.NoError(t, err)

	assert.Equal(t, 2400, eco.NightlyHotelBudget)
	assert.Equal(t, 6300, lux.NightlyHotelBudget)
	assert.Equal(t, 360, eco.MealBudgetPerPerson)
	assert.Equal(t, 840, lux.MealBudgetPerPerson)
}
