package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlockStripsFences(t *testing.T) {
	raw := "```json\n{\"title\": \"Goa\"}\n```"
	block, err := ExtractJSONBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"title": "Goa"}`, block)
}

func TestExtractJSONBlockFromProse(t *testing.T) {
	raw := "Here is your itinerary:\n{\"days\": [{\"dayNumber\": 1}]}\nEnjoy your trip!"
	block, err := ExtractJSONBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"days": [{"dayNumber": 1}]}`, block)
}

func TestExtractJSONBlockIgnoresBracesInStrings(t *testing.T) {
	raw := `{"tip": "brackets } inside { strings", "ok": true} trailing junk`
	block, err := ExtractJSONBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"tip": "brackets } inside { strings", "ok": true}`, block)
}

func TestExtractJSONBlockArray(t *testing.T) {
	raw := "Sure! [\n{\"name\": \"Taj\"}\n]"
	block, err := ExtractJSONBlock(raw)
	require.NoError(t, err)
	assert.Equal(t, "[\n{\"name\": \"Taj\"}\n]", block)
}

func TestExtractJSONBlockFailures(t *testing.T) {
	var malformed *MalformedError

	_, err := ExtractJSONBlock("no json here at all")
	require.Error(t, err)
	assert.True(t, errors.As(err, &malformed))

	_, err = ExtractJSONBlock(`{"truncated": [1, 2`)
	require.Error(t, err)
	assert.True(t, errors.As(err, &malformed))
}

func TestParseItineraryZeroDaysIsFatal(t *testing.T) {
	_, err := ParseItinerary(`{"title": "Empty Trip", "days": []}`)
	require.Error(t, err)

	var malformed *MalformedError
	assert.True(t, errors.As(err, &malformed))
}

func TestParseItineraryDefaults(t *testing.T) {
	raw := `{
		"title": "Jaipur Getaway",
		"days": [
			{"slots": [{"timeLabel": "9:00 AM", "type": "attraction", "title": "Amber Fort"}]},
			{"slots": [{"type": "food", "title": "Lunch"}]}
		]
	}`
	gen, err := ParseItinerary(raw)
	require.NoError(t, err)

	assert.Equal(t, 1, gen.Days[0].DayNumber)
	assert.Equal(t, 2, gen.Days[1].DayNumber)
	assert.Equal(t, 1, gen.Days[0].Slots[0].SlotOrder)

	// Absent collections come back as empty slices, never nil.
	assert.NotNil(t, gen.Days[0].Slots[0].Suggestions)
	assert.Empty(t, gen.Days[0].Slots[0].Suggestions)
	assert.NotNil(t, gen.TravelTips)
	assert.NotNil(t, gen.LocalPhrases)
	assert.NotNil(t, gen.HotelSuggestions)
}

func TestParseHotelListDropsEmptyNames(t *testing.T) {
	raw := `[{"name": "  ", "tier": "economy"}, {"name": "Taj Lake Palace", "tier": "luxury"}]`
	hotels, err := ParseHotelList(raw)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Taj Lake Palace", hotels[0].Name)
}

func TestParseHotelListWrappedObject(t *testing.T) {
	raw := `{"hotels": [{"name": "Rambagh Palace", "tier": "luxury"}]}`
	hotels, err := ParseHotelList(raw)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Rambagh Palace", hotels[0].Name)
}

func TestParseHotelListAllUnusable(t *testing.T) {
	_, err := ParseHotelList(`[{"name": ""}, {"name": "   "}]`)
	require.Error(t, err)

	var malformed *MalformedError
	assert.True(t, errors.As(err, &malformed))
}

func TestParseRestaurantListWrappedObject(t *testing.T) {
	raw := `{"restaurants": [{"name": "Suvarna Mahal", "priceRange": "premium"}]}`
	restaurants, err := ParseRestaurantList(raw)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Suvarna Mahal", restaurants[0].Name)
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, DefaultRating, ClampRating(0))
	assert.Equal(t, 5.0, ClampRating(9.3))
	assert.Equal(t, 0.0, ClampRating(-2))
	assert.Equal(t, 4.4, ClampRating(4.4))
}

func TestClampStars(t *testing.T) {
	assert.Equal(t, DefaultStarRating, ClampStars(0))
	assert.Equal(t, 5, ClampStars(11))
	assert.Equal(t, 1, ClampStars(-3))
	assert.Equal(t, 4, ClampStars(4))
}
