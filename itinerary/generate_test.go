package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripwise/globals"
	"tripwise/groq"
	"tripwise/models"
	"tripwise/planner"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGen struct {
	text string
}

func (g *stubGen) Generate(ctx context.Context, req groq.Request) (groq.Result, error) {
	return groq.Result{Text: g.text}, nil
}

type stubStore struct {
	itineraries []*models.Itinerary
}

func (s *stubStore) FindDestinationByName(ctx context.Context, name string) (*models.Destination, error) {
	return nil, nil
}

func (s *stubStore) CreateDestination(ctx context.Context, d *models.Destination) error {
	return nil
}

func (s *stubStore) AttractionsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Attraction, error) {
	return []models.Attraction{}, nil
}

func (s *stubStore) TopRestaurantsByDestination(ctx context.Context, destinationID string, limit int64) ([]models.Restaurant, error) {
	return []models.Restaurant{}, nil
}

func (s *stubStore) HotelsByDestinationTier(ctx context.Context, destinationID string, tier models.Tier, limit int64) ([]models.Hotel, error) {
	return []models.Hotel{}, nil
}

func (s *stubStore) InsertItinerary(ctx context.Context, it *models.Itinerary) error {
	s.itineraries = append(s.itineraries, it)
	return nil
}

const generatedJSON = `{
	"title": "Two Days in Udaipur",
	"travelTips": ["Carry sunscreen"],
	"days": [
		{"dayNumber": 1, "title": "Lakes", "summary": "Pichola and palaces.", "slots": []},
		{"dayNumber": 2, "title": "Old City", "summary": "Bazaars and rooftops.", "slots": []}
	]
}`

func TestGenerateResponseCarriesShareURL(t *testing.T) {
	store := &stubStore{}
	engine := planner.NewEngine(store, &stubGen{text: generatedJSON}, "test-model")
	h := NewHandler(engine)

	body, err := json.Marshal(models.TripRequest{
		Destination: "Udaipur, Rajasthan",
		OriginCity:  "Mumbai",
		Days:        2,
		Adults:      2,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Generate(rec, req, httprouter.Params{})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Itinerary models.Itinerary `json:"itinerary"`
		ShareURL  string           `json:"shareUrl"`
		Meta      planner.Meta     `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "Two Days in Udaipur", resp.Itinerary.Title)
	require.NotEmpty(t, resp.Itinerary.ShareToken)
	assert.Equal(t, globals.FrontendURL+"/trips/shared/"+resp.Itinerary.ShareToken, resp.ShareURL)
	assert.Equal(t, "test-model", resp.Meta.ModelUsed)

	require.Len(t, store.itineraries, 1)
}

func TestGenerateRejectsBadPayload(t *testing.T) {
	h := NewHandler(planner.NewEngine(&stubStore{}, &stubGen{text: generatedJSON}, "test-model"))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Generate(rec, req, httprouter.Params{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
