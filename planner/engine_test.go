package planner

import (
	"context"
	"errors"
	"testing"

	"tripwise/groq"
	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGen struct {
	text  string
	err   error
	calls int
}

func (g *fakeGen) Generate(ctx context.Context, req groq.Request) (groq.Result, error) {
	g.calls++
	if g.err != nil {
		return groq.Result{}, g.err
	}
	return groq.Result{Text: g.text}, nil
}

type fakeStore struct {
	dest        *models.Destination
	itineraries []*models.Itinerary
	created     []*models.Destination
	insertErr   error
}

func (s *fakeStore) FindDestinationByName(ctx context.Context, name string) (*models.Destination, error) {
	return s.dest, nil
}

func (s *fakeStore) CreateDestination(ctx context.Context, d *models.Destination) error {
	s.created = append(s.created, d)
	return nil
}

func (s *fakeStore) AttractionsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Attraction, error) {
	return []models.Attraction{}, nil
}

func (s *fakeStore) TopRestaurantsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Restaurant, error) {
	return []models.Restaurant{}, nil
}

func (s *fakeStore) HotelsByDestinationTier(ctx context.Context, destinationID string, tier models.Tier, limit int64) ([]models.Hotel, error) {
	return []models.Hotel{}, nil
}

func (s *fakeStore) InsertItinerary(ctx context.Context, it *models.Itinerary) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.itineraries = append(s.itineraries, it)
	return nil
}

const sampleItineraryJSON = `{
	"title": "Pink City Royale: Jaipur in 3 Days",
	"bestTimeToVisit": "October to March",
	"travelTips": ["Carry cash for street food", "Book fort tickets online"],
	"localPhrases": [{"phrase": "Khamma Ghani", "meaning": "Hello"}],
	"hotelSuggestions": [
		{"name": "Alsisar Haveli", "type": "Heritage Haveli", "pricePerNight": 4500, "rating": 4.3, "whyStayHere": "Restored 19th-century haveli.", "location": "Sansar Chandra Road", "isRecommended": true}
	],
	"days": [
		{"dayNumber": 1, "title": "Forts & Thalis", "summary": "Amber Fort and old city.", "slots": [
			{"slotOrder": 1, "timeLabel": "9:00 AM", "type": "attraction", "title": "Amber Fort", "description": "Hilltop fort.", "durationMins": 150, "estimatedCost": 200, "aiTip": "Go early.", "suggestions": []},
			{"slotOrder": 2, "timeLabel": "1:00 PM", "type": "food", "title": "Lunch", "description": "Thali time.", "durationMins": 60, "estimatedCost": 540, "aiTip": "", "suggestions": [
				{"name": "Laxmi Misthan Bhandar", "cuisine": "Rajasthani", "pricePerPerson": 300, "mustOrder": "Raj Kachori", "vibe": "heritage", "isVeg": true}
			]}
		]},
		{"dayNumber": 2, "title": "Palaces", "summary": "City Palace and Hawa Mahal.", "slots": []},
		{"dayNumber": 3, "title": "Markets", "summary": "Bapu Bazaar shopping.", "slots": []}
	]
}`

func jaipurRequest() models.TripRequest {
	return models.TripRequest{
		Destination:          "Jaipur, Rajasthan",
		OriginCity:           "Delhi",
		Days:                 3,
		Adults:               2,
		Tier:                 "standard",
		StartDate:            "2026-11-10",
		DailyBudgetPerPerson: 3000,
	}
}

func TestGeneratePlanRejectsBadInputBeforeGenerating(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.TripRequest)
	}{
		{"zero days", func(r *models.TripRequest) { r.Days = 0 }},
		{"too many days", func(r *models.TripRequest) { r.Days = 31 }},
		{"no adults", func(r *models.TripRequest) { r.Adults = 0 }},
		{"negative children", func(r *models.TripRequest) { r.Children = -1 }},
		{"unknown tier", func(r *models.TripRequest) { r.Tier = "premium" }},
		{"blank destination", func(r *models.TripRequest) { r.Destination = "   " }},
		{"blank origin", func(r *models.TripRequest) { r.OriginCity = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGen{text: sampleItineraryJSON}
			engine := NewEngine(&fakeStore{}, gen, "test-model")

			req := jaipurRequest()
			tc.mutate(&req)

			_, _, err := engine.GeneratePlan(context.Background(), req, "u1")
			require.Error(t, err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want ValidationError, got %T", err)
			assert.Zero(t, gen.calls, "generator must not be called for invalid input")
		})
	}
}

func TestGeneratePlanEndToEnd(t *testing.T) {
	gen := &fakeGen{text: sampleItineraryJSON}
	store := &fakeStore{}
	engine := NewEngine(store, gen, "test-model")

	it, meta, err := engine.GeneratePlan(context.Background(), jaipurRequest(), "u1")
	require.NoError(t, err)
	require.NotNil(t, it)
	require.NotNil(t, meta)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Pink City Royale: Jaipur in 3 Days", it.Title)
	assert.Equal(t, 3, it.TotalDays)
	assert.Len(t, it.Days, 3)
	assert.Equal(t, models.TierStandard, it.BudgetTier)
	assert.Equal(t, models.StatusGenerated, it.Status)
	assert.NotEmpty(t, it.ItineraryID)
	assert.NotEmpty(t, it.ShareToken)
	assert.Equal(t, "test-model", it.AiModelUsed)

	// The stored breakdown is the deterministic one for all three tiers.
	require.Len(t, it.BudgetBreakdown, 3)
	std := breakdownFor(t, it.BudgetBreakdown, models.TierStandard)
	assert.Equal(t, 18000, std.Total)
	assert.Equal(t, 9000, std.PerPerson)

	// Day dates follow the start date.
	require.NotNil(t, it.Days[1].Date)
	assert.Equal(t, "2026-11-11", it.Days[1].Date.Format("2006-01-02"))
	require.NotNil(t, it.EndDate)
	assert.Equal(t, "2026-11-12", it.EndDate.Format("2006-01-02"))

	// Persisted exactly once, and a placeholder destination was created
	// because the store had no record for Jaipur.
	require.Len(t, store.itineraries, 1)
	require.Len(t, store.created, 1)
	assert.Equal(t, store.created[0].DestinationID, it.DestinationID)
	assert.Equal(t, "Jaipur", store.created[0].Name)
	assert.Equal(t, "Rajasthan", store.created[0].State)
}

func TestGeneratePlanKnownDestinationSkipsPlaceholder(t *testing.T) {
	gen := &fakeGen{text: sampleItineraryJSON}
	store := &fakeStore{dest: &models.Destination{DestinationID: "dest-1", Name: "Jaipur", Slug: "jaipur"}}
	engine := NewEngine(store, gen, "test-model")

	it, _, err := engine.GeneratePlan(context.Background(), jaipurRequest(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "dest-1", it.DestinationID)
	assert.Empty(t, store.created)
}

func TestGeneratePlanWrapsUpstreamFailure(t *testing.T) {
	boom := errors.New("rate limited")
	gen := &fakeGen{err: boom}
	engine := NewEngine(&fakeStore{}, gen, "test-model")

	_, _, err := engine.GeneratePlan(context.Background(), jaipurRequest(), "u1")
	require.Error(t, err)

	var uerr *UpstreamError
	require.True(t, errors.As(err, &uerr))
	assert.ErrorIs(t, err, boom)
}

func TestGeneratePlanMalformedOutputFailsWhole(t *testing.T) {
	gen := &fakeGen{text: "I could not generate an itinerary, sorry."}
	store := &fakeStore{}
	engine := NewEngine(store, gen, "test-model")

	_, _, err := engine.GeneratePlan(context.Background(), jaipurRequest(), "u1")
	require.Error(t, err)

	var merr *MalformedError
	assert.True(t, errors.As(err, &merr))
	assert.Empty(t, store.itineraries, "nothing may be persisted on malformed output")
}

func TestGeneratePlanDefaultsTierAndBudget(t *testing.T) {
	gen := &fakeGen{text: sampleItineraryJSON}
	engine := NewEngine(&fakeStore{}, gen, "test-model")

	req := jaipurRequest()
	req.Tier = ""
	req.DailyBudgetPerPerson = 0

	it, _, err := engine.GeneratePlan(context.Background(), req, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierStandard, it.BudgetTier)
	assert.Equal(t, 3000, it.DailyBudgetPerPerson)
}

func breakdownFor(t *testing.T, breakdowns []models.BudgetBreakdown, tier models.Tier) models.BudgetBreakdown {
	t.Helper()
	for _, b := range breakdowns {
		if b.Tier == tier {
			return b
		}
	}
	t.Fatalf("no breakdown for tier %s", tier)
	return models.BudgetBreakdown{}
}
