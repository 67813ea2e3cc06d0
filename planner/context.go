package planner

import (
	"context"

	"tripwise/groq"
	"tripwise/models"
)

// Grounding-context bounds: enough to anchor the model on real records
// without blowing the token budget.
const (
	maxContextAttractions = 15
	maxContextRestaurants = 10
	maxContextHotels      = 5
)

// Generator is the single suspension point of the pipeline. The groq
// client satisfies it; tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, req groq.Request) (groq.Result, error)
}

// Store is the subset of persistence the pipeline needs. The mongo-backed
// implementation lives in the store package.
type Store interface {
	// FindDestinationByName resolves a free-text destination to a curated
	// record by slug or name match. Returns nil with no error on a miss.
	FindDestinationByName(ctx context.Context, name string) (*models.Destination, error)
	CreateDestination(ctx context.Context, d *models.Destination) error
	AttractionsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Attraction, error)
	TopRestaurantsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Restaurant, error)
	HotelsByDestinationTier(ctx context.Context, destinationID string, tier models.Tier, limit int64) ([]models.Hotel, error)
	InsertItinerary(ctx context.Context, it *models.Itinerary) error
}

// Context is the curated grounding data fed into the prompt. All fields
// may be empty: an unknown destination still produces a valid request
// that tells the model to use its own knowledge of the place.
type Context struct {
	Destination *models.Destination
	Attractions []models.Attraction
	Restaurants []models.Restaurant
	Hotels      []models.Hotel
}

// AssembleContext gathers grounding records for a destination. Read-only;
// a nil destination yields empty context rather than an error.
func AssembleContext(ctx context.Context, store Store, dest *models.Destination, tier models.Tier) (Context, error) {
	out := Context{Destination: dest}
	if dest == nil {
		return out, nil
	}

	attractions, err := store.AttractionsByDestination(ctx, dest.DestinationID, maxContextAttractions)
	if err != nil {
		return out, err
	}
	restaurants, err := store.TopRestaurantsByDestination(ctx, dest.DestinationID, maxContextRestaurants)
	if err != nil {
		return out, err
	}
	hotels, err := store.HotelsByDestinationTier(ctx, dest.DestinationID, tier, maxContextHotels)
	if err != nil {
		return out, err
	}

	out.Attractions = attractions
	out.Restaurants = restaurants
	out.Hotels = hotels
	return out, nil
}
