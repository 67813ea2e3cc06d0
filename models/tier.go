package models

import "fmt"

// Tier is the pricing/quality bracket for a trip.
type Tier string

const (
	TierEconomy  Tier = "economy"
	TierStandard Tier = "standard"
	TierLuxury   Tier = "luxury"
)

// Tiers in ascending price order.
var Tiers = []Tier{TierEconomy, TierStandard, TierLuxury}

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierEconomy, TierStandard, TierLuxury:
		return Tier(s), nil
	}
	return "", fmt.Errorf("tier must be economy, standard or luxury")
}

// PriceRange classifies restaurants.
type PriceRange string

const (
	PriceBudget  PriceRange = "budget"
	PriceMid     PriceRange = "mid"
	PricePremium PriceRange = "premium"
)

// CoercePriceRange maps unknown values to mid.
func CoercePriceRange(s string) PriceRange {
	switch PriceRange(s) {
	case PriceBudget, PriceMid, PricePremium:
		return PriceRange(s)
	}
	return PriceMid
}
