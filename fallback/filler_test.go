package fallback

import (
	"context"
	"testing"
	"time"

	"tripwise/groq"
	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGen struct {
	responses []string
	calls     int
}

func (g *fakeGen) Generate(ctx context.Context, req groq.Request) (groq.Result, error) {
	g.calls++
	text := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return groq.Result{Text: text}, nil
}

type memStore struct {
	destinations map[string]*models.Destination
	hotels       []models.Hotel
	restaurants  []models.Restaurant
}

func newMemStore() *memStore {
	return &memStore{destinations: map[string]*models.Destination{}}
}

func (s *memStore) FindDestinationBySlug(ctx context.Context, slug string) (*models.Destination, error) {
	return s.destinations[slug], nil
}

func (s *memStore) CreateDestination(ctx context.Context, d *models.Destination) error {
	if existing, ok := s.destinations[d.Slug]; ok {
		*d = *existing
		return nil
	}
	s.destinations[d.Slug] = d
	return nil
}

func (s *memStore) HotelsByDestination(ctx context.Context, destinationID string, tier models.Tier) ([]models.Hotel, error) {
	out := []models.Hotel{}
	for _, h := range s.hotels {
		if h.DestinationID != destinationID {
			continue
		}
		if tier != "" && h.Tier != tier {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (s *memStore) RestaurantsByDestination(ctx context.Context, destinationID string, isVeg *bool, priceRange models.PriceRange) ([]models.Restaurant, error) {
	out := []models.Restaurant{}
	for _, r := range s.restaurants {
		if r.DestinationID != destinationID {
			continue
		}
		if isVeg != nil && r.IsVeg != *isVeg {
			continue
		}
		if priceRange != "" && r.PriceRange != priceRange {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *memStore) InsertHotels(ctx context.Context, hotels []models.Hotel) (int, error) {
	s.hotels = append(s.hotels, hotels...)
	return len(hotels), nil
}

func (s *memStore) InsertRestaurants(ctx context.Context, restaurants []models.Restaurant) (int, error) {
	s.restaurants = append(s.restaurants, restaurants...)
	return len(restaurants), nil
}

func newTestFiller(store Store, gen *fakeGen) *Filler {
	return &Filler{
		Store:       store,
		Gen:         gen,
		AcquireLock: func(ctx context.Context, slug, kind string) (bool, func()) { return true, func() {} },
		WaitForFill: func(ctx context.Context, slug, kind string, maxWait time.Duration) {},
	}
}

const destinationJSON = `{"state": "Rajasthan", "region": "North India", "category": "Heritage", "description": "Pink city of forts.", "bestSeason": "Oct-Mar", "avgDurationDays": 3, "mapLat": 26.9, "mapLng": 75.8}`

const hotelsJSON = `[
	{"name": "Hotel Pearl Palace", "tier": "economy", "starRating": 2, "pricePerNight": 1400, "rating": 4.5, "reviewCount": 2100, "amenities": ["WiFi"], "address": "Hathroi Fort"},
	{"name": "Alsisar Haveli", "tier": "standard", "starRating": 4, "pricePerNight": 4800, "rating": 4.3, "reviewCount": 1500},
	{"name": "Rambagh Palace", "tier": "ultra-luxe", "starRating": 9, "pricePerNight": 42000, "rating": 7.5, "reviewCount": 3400}
]`

const restaurantsJSON = `[
	{"name": "Laxmi Misthan Bhandar", "cuisineType": "Rajasthani", "pricePerPerson": 300, "priceRange": "budget", "isVeg": true, "rating": 4.2},
	{"name": "Suvarna Mahal", "cuisineType": "", "pricePerPerson": 0, "priceRange": "ridiculous", "isVeg": false, "rating": 0}
]`

func TestUpsertDestinationIdempotent(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{destinationJSON}}
	filler := newTestFiller(store, gen)

	d1, err := filler.UpsertDestination(context.Background(), "Jaipur")
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "jaipur", d1.Slug)
	assert.Equal(t, "Rajasthan", d1.State)
	assert.Equal(t, "Heritage", d1.Category)
	require.Len(t, d1.Pricing, 3)

	// Second lookup hits the store; no generation.
	d2, err := filler.UpsertDestination(context.Background(), "Jaipur")
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, d1.DestinationID, d2.DestinationID)
}

func TestUpsertDestinationCoercesBadCategory(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{`{"state": "", "category": "Metropolis"}`}}
	filler := newTestFiller(store, gen)

	d, err := filler.UpsertDestination(context.Background(), "Surat")
	require.NoError(t, err)
	assert.Equal(t, "Nature", d.Category)
	assert.Equal(t, "India", d.State)
	assert.NotEmpty(t, d.Description)
	assert.NotEmpty(t, d.HeroImageURL)
}

func TestHotelsBySlugFillsOnMiss(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{destinationJSON, hotelsJSON}}
	filler := newTestFiller(store, gen)

	hotels, dest, err := filler.HotelsBySlug(context.Background(), "jaipur", "")
	require.NoError(t, err)
	require.NotNil(t, dest)
	require.Len(t, hotels, 3)
	assert.Equal(t, 2, gen.calls)

	// Every generated hotel references the new destination and carries
	// normalized fields.
	for _, h := range hotels {
		assert.Equal(t, dest.DestinationID, h.DestinationID)
		assert.NotEmpty(t, h.HotelID)
		assert.NotEmpty(t, h.ImageURL)
		assert.True(t, h.IsActive)
		assert.NotEmpty(t, h.CheckInTime)
		assert.NotEmpty(t, h.CheckOutTime)
	}

	// Unknown tier coerces to standard, out-of-range values clamp.
	rambagh := hotels[2]
	assert.Equal(t, models.TierStandard, rambagh.Tier)
	assert.Equal(t, 5, rambagh.StarRating)
	assert.Equal(t, 5.0, rambagh.Rating)

	// Persisted: a later request with a tier filter reads the store
	// without another generation call.
	economy, _, err := filler.HotelsBySlug(context.Background(), "jaipur", models.TierEconomy)
	require.NoError(t, err)
	require.Len(t, economy, 1)
	assert.Equal(t, "Hotel Pearl Palace", economy[0].Name)
	assert.Equal(t, 2, gen.calls)
}

func TestHotelsBySlugTierFilterOnFreshSet(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{destinationJSON, hotelsJSON}}
	filler := newTestFiller(store, gen)

	luxury, _, err := filler.HotelsBySlug(context.Background(), "jaipur", models.TierLuxury)
	require.NoError(t, err)

	// The full set is persisted but only the requested tier is returned.
	assert.Empty(t, luxury)
	assert.Len(t, store.hotels, 3)
}

func TestRestaurantsBySlugNormalizesDefaults(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{destinationJSON, restaurantsJSON}}
	filler := newTestFiller(store, gen)

	restaurants, dest, err := filler.RestaurantsBySlug(context.Background(), "jaipur", nil, "")
	require.NoError(t, err)
	require.NotNil(t, dest)
	require.Len(t, restaurants, 2)

	suvarna := restaurants[1]
	assert.Equal(t, "Indian", suvarna.CuisineType)
	assert.Equal(t, 400, suvarna.PricePerPerson)
	assert.Equal(t, models.PriceMid, suvarna.PriceRange)
	assert.Equal(t, 4.0, suvarna.Rating)
	assert.NotEmpty(t, suvarna.ImageURL)
}

func TestRestaurantsBySlugVegFilter(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{destinationJSON, restaurantsJSON}}
	filler := newTestFiller(store, gen)

	veg := true
	restaurants, _, err := filler.RestaurantsBySlug(context.Background(), "jaipur", &veg, "")
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Laxmi Misthan Bhandar", restaurants[0].Name)

	// Both records were still persisted.
	assert.Len(t, store.restaurants, 2)
}

func TestHotelsBySlugLockLoserReadsWinnerFill(t *testing.T) {
	store := newMemStore()
	gen := &fakeGen{responses: []string{destinationJSON}}

	filler := newTestFiller(store, gen)
	dest, err := filler.UpsertDestination(context.Background(), "Jaipur")
	require.NoError(t, err)

	// Simulate losing the fill lock while another process persists the
	// set during the wait.
	filler.AcquireLock = func(ctx context.Context, slug, kind string) (bool, func()) { return false, func() {} }
	filler.WaitForFill = func(ctx context.Context, slug, kind string, maxWait time.Duration) {
		store.hotels = append(store.hotels, models.Hotel{
			HotelID:       "h1",
			DestinationID: dest.DestinationID,
			Name:          "Hotel Pearl Palace",
			Tier:          models.TierEconomy,
		})
	}

	hotels, _, err := filler.HotelsBySlug(context.Background(), "jaipur", "")
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "h1", hotels[0].HotelID)
	assert.Equal(t, 1, gen.calls, "loser must not generate when the winner filled the cache")
}
