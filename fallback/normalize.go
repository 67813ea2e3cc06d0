package fallback

import (
	"fmt"
	"strings"
	"time"

	"tripwise/models"
	"tripwise/planner"
	"tripwise/utils"
)

// Consistent stock images per tier and price range so cards always render.
var hotelImages = map[models.Tier]string{
	models.TierEconomy:  "https://images.unsplash.com/photo-1590050811270-c33c6df97517?auto=format&fit=crop&w=700&q=80",
	models.TierStandard: "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=700&q=80",
	models.TierLuxury:   "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&w=700&q=80",
}

var foodImages = map[models.PriceRange]string{
	models.PriceBudget:  "https://images.unsplash.com/photo-1585937421612-70a008356fbe?auto=format&fit=crop&w=700&q=80",
	models.PriceMid:     "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?auto=format&fit=crop&w=700&q=80",
	models.PricePremium: "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?auto=format&fit=crop&w=700&q=80",
}

const defaultHeroImage = "https://images.unsplash.com/photo-1477587458883-47145ed94245?auto=format&fit=crop&w=1920&q=90"

// Default per-tier cost envelopes attached to every generated destination.
var defaultPricing = []models.PricingProfile{
	{Tier: models.TierEconomy, HotelMinPrice: 500, HotelMaxPrice: 2500, FoodCostPerDay: 400, TransportCostPerDay: 300},
	{Tier: models.TierStandard, HotelMinPrice: 2500, HotelMaxPrice: 8000, FoodCostPerDay: 1200, TransportCostPerDay: 900},
	{Tier: models.TierLuxury, HotelMinPrice: 8000, HotelMaxPrice: 50000, FoodCostPerDay: 4000, TransportCostPerDay: 3000},
}

func coerceTier(s string) models.Tier {
	tier, err := models.ParseTier(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return models.TierStandard
	}
	return tier
}

// normalizeHotel turns a raw generated record into a storable hotel.
// Every field gets trimmed, clamped or defaulted; a fresh value is
// built rather than the raw record patched.
func normalizeHotel(g planner.GenHotel, destinationID string) models.Hotel {
	tier := coerceTier(g.Tier)
	price := int(g.PricePerNight)
	if price <= 0 {
		price = planner.DefaultHotelPrice
	}
	amenities := g.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	checkIn := strings.TrimSpace(g.CheckInTime)
	if checkIn == "" {
		checkIn = planner.DefaultCheckInTime
	}
	checkOut := strings.TrimSpace(g.CheckOutTime)
	if checkOut == "" {
		checkOut = planner.DefaultCheckOutTime
	}
	return models.Hotel{
		HotelID:       utils.GetUUID(),
		DestinationID: destinationID,
		Name:          strings.TrimSpace(g.Name),
		Tier:          tier,
		StarRating:    planner.ClampStars(int(g.StarRating)),
		PricePerNight: price,
		Description:   strings.TrimSpace(g.Description),
		ImageURL:      hotelImages[tier],
		Address:       strings.TrimSpace(g.Address),
		Amenities:     amenities,
		CheckInTime:   checkIn,
		CheckOutTime:  checkOut,
		Website:       strings.TrimSpace(g.Website),
		Tag:           strings.TrimSpace(g.Tag),
		MapLat:        g.MapLat,
		MapLng:        g.MapLng,
		Rating:        planner.ClampRating(g.Rating),
		ReviewCount:   max(0, int(g.ReviewCount)),
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
}

func normalizeRestaurant(g planner.GenRestaurant, destinationID string) models.Restaurant {
	priceRange := models.CoercePriceRange(strings.ToLower(strings.TrimSpace(g.PriceRange)))
	price := int(g.PricePerPerson)
	if price <= 0 {
		price = planner.DefaultRestaurantPrice
	}
	cuisine := strings.TrimSpace(g.CuisineType)
	if cuisine == "" {
		cuisine = planner.DefaultCuisine
	}
	return models.Restaurant{
		RestaurantID:   utils.GetUUID(),
		DestinationID:  destinationID,
		Name:           strings.TrimSpace(g.Name),
		CuisineType:    cuisine,
		PricePerPerson: price,
		PriceRange:     priceRange,
		IsVeg:          g.IsVeg,
		MustTryDishes:  strings.TrimSpace(g.MustTryDishes),
		Description:    strings.TrimSpace(g.Description),
		Address:        strings.TrimSpace(g.Address),
		OpenTime:       strings.TrimSpace(g.OpenTime),
		CloseTime:      strings.TrimSpace(g.CloseTime),
		Website:        strings.TrimSpace(g.Website),
		MapLat:         g.MapLat,
		MapLng:         g.MapLng,
		Rating:         planner.ClampRating(g.Rating),
		ReviewCount:    max(0, int(g.ReviewCount)),
		ImageURL:       foodImages[priceRange],
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
}

func normalizeDestination(g *planner.GenDestination, name, slug string) *models.Destination {
	state := strings.TrimSpace(g.State)
	if state == "" {
		state = "India"
	}
	region := strings.TrimSpace(g.Region)
	if region == "" {
		region = "India"
	}
	description := strings.TrimSpace(g.Description)
	if description == "" {
		description = fmt.Sprintf("Explore %s, India.", name)
	}
	season := strings.TrimSpace(g.BestSeason)
	if season == "" {
		season = planner.DefaultBestSeason
	}
	duration := int(g.AvgDurationDays)
	if duration <= 0 {
		duration = planner.DefaultAvgDuration
	}
	now := time.Now()
	return &models.Destination{
		DestinationID:   utils.GetUUID(),
		Name:            name,
		Slug:            slug,
		State:           state,
		Region:          region,
		Category:        models.CoerceCategory(strings.TrimSpace(g.Category)),
		Description:     description,
		HeroImageURL:    defaultHeroImage,
		MapLat:          g.MapLat,
		MapLng:          g.MapLng,
		BestSeason:      season,
		AvgDurationDays: duration,
		Pricing:         defaultPricing,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
