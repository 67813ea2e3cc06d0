package fallback

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripwise/groq"
	"tripwise/models"
	"tripwise/planner"
	"tripwise/rdx"
	"tripwise/utils"
)

// Generation-call tuning for data fills: cold and short compared to
// the itinerary variant.
const (
	dataTemperature = 0.4
	dataMaxTokens   = 2048
	destMaxTokens   = 512

	fillWait = 20 * time.Second
)

// Store is the persistence surface the filler needs. The Mongo store
// satisfies it; tests supply fakes.
type Store interface {
	FindDestinationBySlug(ctx context.Context, slug string) (*models.Destination, error)
	CreateDestination(ctx context.Context, d *models.Destination) error
	HotelsByDestination(ctx context.Context, destinationID string, tier models.Tier) ([]models.Hotel, error)
	RestaurantsByDestination(ctx context.Context, destinationID string, isVeg *bool, priceRange models.PriceRange) ([]models.Restaurant, error)
	InsertHotels(ctx context.Context, hotels []models.Hotel) (int, error)
	InsertRestaurants(ctx context.Context, restaurants []models.Restaurant) (int, error)
}

// Filler serves hotel, restaurant and destination reads cache-aside:
// hit the store first, generate and persist on a miss, and always
// answer the caller from the freshly generated set even if persistence
// only partially succeeded.
type Filler struct {
	Store Store
	Gen   planner.Generator

	// Advisory lock hooks, overridable in tests. Defaults go through
	// redis; on redis trouble the lock degrades to always-acquired.
	AcquireLock func(ctx context.Context, slug, kind string) (bool, func())
	WaitForFill func(ctx context.Context, slug, kind string, maxWait time.Duration)
}

func NewFiller(store Store, gen planner.Generator) *Filler {
	return &Filler{
		Store:       store,
		Gen:         gen,
		AcquireLock: rdx.AcquireFillLock,
		WaitForFill: rdx.WaitForFill,
	}
}

// UpsertDestination resolves a slug to a destination, generating a new
// record when the store has never seen the city. First committer wins;
// concurrent fillers converge on the stored record.
func (f *Filler) UpsertDestination(ctx context.Context, cityName string) (*models.Destination, error) {
	slug := utils.Slugify(cityName)

	existing, err := f.Store.FindDestinationBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	acquired, release := f.AcquireLock(ctx, slug, "destination")
	if !acquired {
		f.WaitForFill(ctx, slug, "destination", fillWait)
		if d, err := f.Store.FindDestinationBySlug(ctx, slug); err == nil && d != nil {
			return d, nil
		}
		// Winner failed or timed out; fall through and generate ourselves.
	} else {
		defer release()
	}

	name := utils.TitleCase(cityName)
	result, err := f.Gen.Generate(ctx, groq.Request{
		System:      dataSystemPrompt,
		Prompt:      destinationPrompt(name),
		Temperature: dataTemperature,
		MaxTokens:   destMaxTokens,
	})
	if err != nil {
		return nil, &planner.UpstreamError{Err: err}
	}

	meta, err := planner.ParseDestinationMeta(result.Text)
	if err != nil {
		return nil, err
	}

	d := normalizeDestination(meta, name, slug)
	if err := f.Store.CreateDestination(ctx, d); err != nil {
		return nil, fmt.Errorf("create destination %q: %w", slug, err)
	}
	log.Printf("[fallback] created destination %q (slug %s)", name, slug)
	return d, nil
}

// HotelsBySlug returns a destination's hotels, generating and
// persisting a set when the store is empty. The tier filter is applied
// in memory to fresh sets so a fill is never repeated per tier.
func (f *Filler) HotelsBySlug(ctx context.Context, slug string, tier models.Tier) ([]models.Hotel, *models.Destination, error) {
	dest, err := f.UpsertDestination(ctx, slugToName(slug))
	if err != nil {
		return nil, nil, err
	}

	hotels, err := f.Store.HotelsByDestination(ctx, dest.DestinationID, tier)
	if err != nil {
		return nil, nil, err
	}
	if len(hotels) > 0 {
		return hotels, dest, nil
	}

	acquired, release := f.AcquireLock(ctx, slug, "hotels")
	if !acquired {
		f.WaitForFill(ctx, slug, "hotels", fillWait)
		if cached, err := f.Store.HotelsByDestination(ctx, dest.DestinationID, tier); err == nil && len(cached) > 0 {
			return cached, dest, nil
		}
	} else {
		defer release()
	}

	result, err := f.Gen.Generate(ctx, groq.Request{
		System:      dataSystemPrompt,
		Prompt:      hotelPrompt(dest.Name),
		Temperature: dataTemperature,
		MaxTokens:   dataMaxTokens,
	})
	if err != nil {
		return nil, nil, &planner.UpstreamError{Err: err}
	}

	parsed, err := planner.ParseHotelList(result.Text)
	if err != nil {
		return nil, nil, err
	}

	fresh := make([]models.Hotel, 0, len(parsed))
	for _, g := range parsed {
		fresh = append(fresh, normalizeHotel(g, dest.DestinationID))
	}

	inserted, err := f.Store.InsertHotels(ctx, fresh)
	if err != nil {
		// Partial persistence still serves the caller the fresh set.
		log.Printf("[fallback] hotel insert for %q saved %d/%d: %v", slug, inserted, len(fresh), err)
	} else {
		log.Printf("[fallback] saved %d generated hotels for %q", inserted, slug)
	}

	if tier != "" {
		filtered := fresh[:0]
		for _, h := range fresh {
			if h.Tier == tier {
				filtered = append(filtered, h)
			}
		}
		fresh = filtered
	}
	return fresh, dest, nil
}

// RestaurantsBySlug mirrors HotelsBySlug for restaurants; veg and
// price-range filters are applied in memory to fresh sets.
func (f *Filler) RestaurantsBySlug(ctx context.Context, slug string, isVeg *bool, priceRange models.PriceRange) ([]models.Restaurant, *models.Destination, error) {
	dest, err := f.UpsertDestination(ctx, slugToName(slug))
	if err != nil {
		return nil, nil, err
	}

	restaurants, err := f.Store.RestaurantsByDestination(ctx, dest.DestinationID, isVeg, priceRange)
	if err != nil {
		return nil, nil, err
	}
	if len(restaurants) > 0 {
		return restaurants, dest, nil
	}

	acquired, release := f.AcquireLock(ctx, slug, "restaurants")
	if !acquired {
		f.WaitForFill(ctx, slug, "restaurants", fillWait)
		if cached, err := f.Store.RestaurantsByDestination(ctx, dest.DestinationID, isVeg, priceRange); err == nil && len(cached) > 0 {
			return cached, dest, nil
		}
	} else {
		defer release()
	}

	result, err := f.Gen.Generate(ctx, groq.Request{
		System:      dataSystemPrompt,
		Prompt:      restaurantPrompt(dest.Name),
		Temperature: dataTemperature,
		MaxTokens:   dataMaxTokens,
	})
	if err != nil {
		return nil, nil, &planner.UpstreamError{Err: err}
	}

	parsed, err := planner.ParseRestaurantList(result.Text)
	if err != nil {
		return nil, nil, err
	}

	fresh := make([]models.Restaurant, 0, len(parsed))
	for _, g := range parsed {
		fresh = append(fresh, normalizeRestaurant(g, dest.DestinationID))
	}

	inserted, err := f.Store.InsertRestaurants(ctx, fresh)
	if err != nil {
		log.Printf("[fallback] restaurant insert for %q saved %d/%d: %v", slug, inserted, len(fresh), err)
	} else {
		log.Printf("[fallback] saved %d generated restaurants for %q", inserted, slug)
	}

	filtered := fresh[:0]
	for _, r := range fresh {
		if isVeg != nil && r.IsVeg != *isVeg {
			continue
		}
		if priceRange != "" && r.PriceRange != priceRange {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, dest, nil
}

// slugToName rebuilds a display name from a slug ("goa-beaches" ->
// "goa beaches"); TitleCase happens at destination creation.
func slugToName(slug string) string {
	out := make([]byte, len(slug))
	for i := 0; i < len(slug); i++ {
		if slug[i] == '-' {
			out[i] = ' '
		} else {
			out[i] = slug[i]
		}
	}
	return string(out)
}
