package store

import (
	"context"
	"fmt"

	"tripwise/db"
	"tripwise/models"
	"tripwise/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements the store interfaces consumed by the planner engine
// and the fallback cache filler on top of the shared collections.
type Mongo struct{}

func NewMongo() *Mongo {
	return &Mongo{}
}

// FindDestinationByName resolves free text ("Jaipur, Rajasthan") to a
// curated destination via slug or name regex. Misses return (nil, nil).
func (s *Mongo) FindDestinationByName(ctx context.Context, name string) (*models.Destination, error) {
	base := utils.ShortName(name)
	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"slug": bson.M{"$regex": utils.Slugify(base), "$options": "i"}},
			{"name": bson.M{"$regex": base, "$options": "i"}},
		},
	}
	return s.findDestination(ctx, filter)
}

func (s *Mongo) FindDestinationBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	return s.findDestination(ctx, bson.M{"slug": slug, "isActive": true})
}

func (s *Mongo) findDestination(ctx context.Context, filter bson.M) (*models.Destination, error) {
	var d models.Destination
	err := db.DestinationsCollection.FindOne(ctx, filter).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDestination is check-then-create on the slug: the first committer
// wins, later writers get the existing record back.
func (s *Mongo) CreateDestination(ctx context.Context, d *models.Destination) error {
	existing, err := s.FindDestinationBySlug(ctx, d.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		*d = *existing
		return nil
	}
	_, err = db.DestinationsCollection.InsertOne(ctx, d)
	return err
}

func (s *Mongo) AttractionsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Attraction, error) {
	filter := bson.M{"destinationid": destinationID, "isActive": true}
	opts := options.Find().SetLimit(limit).SetSort(bson.M{"visitDurationMins": 1})
	return utils.FindAndDecode[models.Attraction](ctx, db.AttractionsCollection, filter, opts)
}

func (s *Mongo) TopRestaurantsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Restaurant, error) {
	filter := bson.M{"destinationid": destinationID, "isActive": true}
	opts := options.Find().SetLimit(limit).SetSort(bson.M{"rating": -1})
	return utils.FindAndDecode[models.Restaurant](ctx, db.RestaurantsCollection, filter, opts)
}

func (s *Mongo) HotelsByDestinationTier(ctx context.Context, destinationID string, tier models.Tier, limit int64) ([]models.Hotel, error) {
	filter := bson.M{"destinationid": destinationID, "isActive": true, "tier": tier}
	opts := options.Find().SetLimit(limit)
	return utils.FindAndDecode[models.Hotel](ctx, db.HotelsCollection, filter, opts)
}

// HotelsByDestination lists a destination's hotels cheapest-first; an
// empty tier means all tiers.
func (s *Mongo) HotelsByDestination(ctx context.Context, destinationID string, tier models.Tier) ([]models.Hotel, error) {
	filter := bson.M{"destinationid": destinationID, "isActive": true}
	if tier != "" {
		filter["tier"] = tier
	}
	opts := options.Find().SetSort(bson.M{"pricePerNight": 1})
	return utils.FindAndDecode[models.Hotel](ctx, db.HotelsCollection, filter, opts)
}

func (s *Mongo) RestaurantsByDestination(ctx context.Context, destinationID string, isVeg *bool, priceRange models.PriceRange) ([]models.Restaurant, error) {
	filter := bson.M{"destinationid": destinationID, "isActive": true}
	if isVeg != nil {
		filter["isVeg"] = *isVeg
	}
	if priceRange != "" {
		filter["priceRange"] = priceRange
	}
	opts := options.Find().SetSort(bson.M{"rating": -1})
	return utils.FindAndDecode[models.Restaurant](ctx, db.RestaurantsCollection, filter, opts)
}

// InsertHotels persists generated hotels unordered so one bad record
// does not sink the batch. Returns how many actually landed.
func (s *Mongo) InsertHotels(ctx context.Context, hotels []models.Hotel) (int, error) {
	docs := make([]interface{}, len(hotels))
	for i := range hotels {
		docs[i] = hotels[i]
	}
	res, err := db.HotelsCollection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res == nil {
		return 0, err
	}
	return len(res.InsertedIDs), err
}

func (s *Mongo) InsertRestaurants(ctx context.Context, restaurants []models.Restaurant) (int, error) {
	docs := make([]interface{}, len(restaurants))
	for i := range restaurants {
		docs[i] = restaurants[i]
	}
	res, err := db.RestaurantsCollection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res == nil {
		return 0, err
	}
	return len(res.InsertedIDs), err
}

func (s *Mongo) InsertItinerary(ctx context.Context, it *models.Itinerary) error {
	if _, err := db.ItinerariesCollection.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}
	return nil
}
