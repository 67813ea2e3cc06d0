package models

import "time"

// PricingProfile is the per-tier cost envelope of a destination.
type PricingProfile struct {
	Tier                Tier `json:"tier" bson:"tier"`
	HotelMinPrice       int  `json:"hotelMinPrice" bson:"hotelMinPrice"`
	HotelMaxPrice       int  `json:"hotelMaxPrice" bson:"hotelMaxPrice"`
	FoodCostPerDay      int  `json:"foodCostPerDay" bson:"foodCostPerDay"`
	TransportCostPerDay int  `json:"transportCostPerDay" bson:"transportCostPerDay"`
}

type Destination struct {
	DestinationID   string           `json:"destinationid" bson:"destinationid"`
	Name            string           `json:"name" bson:"name"`
	Slug            string           `json:"slug" bson:"slug"`
	State           string           `json:"state" bson:"state"`
	Region          string           `json:"region" bson:"region"`
	Category        string           `json:"category" bson:"category"`
	Description     string           `json:"description" bson:"description"`
	HeroImageURL    string           `json:"heroImageUrl" bson:"heroImageUrl"`
	MapLat          float64          `json:"mapLat,omitempty" bson:"mapLat,omitempty"`
	MapLng          float64          `json:"mapLng,omitempty" bson:"mapLng,omitempty"`
	BestSeason      string           `json:"bestSeason" bson:"bestSeason"`
	AvgDurationDays int              `json:"avgDurationDays" bson:"avgDurationDays"`
	Pricing         []PricingProfile `json:"pricing" bson:"pricing"`
	IsActive        bool             `json:"isActive" bson:"isActive"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// Valid destination categories; unknown generated values coerce to Nature.
var DestinationCategories = []string{
	"Heritage", "Beaches", "Hills", "Backwaters",
	"Wildlife", "Spiritual", "Adventure", "Nature",
}

func CoerceCategory(s string) string {
	for _, c := range DestinationCategories {
		if c == s {
			return s
		}
	}
	return "Nature"
}
