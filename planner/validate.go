package planner

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Central defaults for optional fields missing from generated output.
// Identical across the itinerary, hotel, restaurant and destination
// validators; required fields (name, days, slot type) are never invented.
const (
	DefaultRating          = 4.0
	DefaultStarRating      = 3
	DefaultHotelPrice      = 2000
	DefaultRestaurantPrice = 400
	DefaultVisitMins       = 90
	DefaultCheckInTime     = "12:00 PM"
	DefaultCheckOutTime    = "11:00 AM"
	DefaultCuisine         = "Indian"
	DefaultBestSeason      = "Oct-Mar"
	DefaultAvgDuration     = 4
)

// ClampRating keeps a generated rating inside [0, 5], substituting the
// default when the model omitted it entirely.
func ClampRating(r float64) float64 {
	if r == 0 {
		return DefaultRating
	}
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// ClampStars keeps a star rating inside [1, 5].
func ClampStars(s int) int {
	if s == 0 {
		return DefaultStarRating
	}
	if s < 1 {
		return 1
	}
	if s > 5 {
		return 5
	}
	return s
}

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSONBlock applies the repair ladder to raw model text: strip
// code-fence markup, then return the first balanced JSON object or array.
// Failure at either rung is fatal (MalformedError) — there is nothing
// left to repair.
func ExtractJSONBlock(raw string) (string, error) {
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		raw = m[1]
	}
	raw = strings.TrimSpace(raw)

	start := strings.IndexAny(raw, "[{")
	if start < 0 {
		return "", malformedf("no JSON object or array found in model response")
	}

	open := raw[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}
	return "", malformedf("unbalanced JSON in model response")
}

// ── Generated itinerary shape ────────────────────────────────────────

type GenSuggestion struct {
	Name           string  `json:"name"`
	Cuisine        string  `json:"cuisine"`
	PricePerPerson float64 `json:"pricePerPerson"`
	MustOrder      string  `json:"mustOrder"`
	Vibe           string  `json:"vibe"`
	IsVeg          bool    `json:"isVeg"`
}

type GenSlot struct {
	SlotOrder     int             `json:"slotOrder"`
	TimeLabel     string          `json:"timeLabel"`
	Type          string          `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DurationMins  float64         `json:"durationMins"`
	EstimatedCost float64         `json:"estimatedCost"`
	AiTip         string          `json:"aiTip"`
	Suggestions   []GenSuggestion `json:"suggestions"`
}

type GenDay struct {
	DayNumber int       `json:"dayNumber"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Slots     []GenSlot `json:"slots"`
}

type GenHotelSuggestion struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
	Rating        float64 `json:"rating"`
	WhyStayHere   string  `json:"whyStayHere"`
	Location      string  `json:"location"`
	IsRecommended bool    `json:"isRecommended"`
}

type GenPhrase struct {
	Phrase      string `json:"phrase"`
	Meaning     string `json:"meaning"`
	Translation string `json:"translation"`
}

type GenItinerary struct {
	Title            string               `json:"title"`
	Summary          string               `json:"summary"`
	BestTimeToVisit  string               `json:"bestTimeToVisit"`
	TravelTips       []string             `json:"travelTips"`
	LocalPhrases     []GenPhrase          `json:"localPhrases"`
	HotelSuggestions []GenHotelSuggestion `json:"hotelSuggestions"`
	Days             []GenDay             `json:"days"`
}

// ParseItinerary validates and repairs a raw itinerary response.
// An empty days array is fatal; everything optional gets a safe default.
// A fresh fully-defaulted value is built rather than patched in place.
func ParseItinerary(raw string) (*GenItinerary, error) {
	block, err := ExtractJSONBlock(raw)
	if err != nil {
		return nil, err
	}

	var gen GenItinerary
	if err := json.Unmarshal([]byte(block), &gen); err != nil {
		return nil, malformedf("model response is not valid JSON: %v", err)
	}
	if len(gen.Days) == 0 {
		return nil, malformedf("model returned an itinerary with zero days")
	}

	for di := range gen.Days {
		day := &gen.Days[di]
		if day.DayNumber == 0 {
			day.DayNumber = di + 1
		}
		for si := range day.Slots {
			slot := &day.Slots[si]
			if slot.SlotOrder == 0 {
				slot.SlotOrder = si + 1
			}
			if slot.Suggestions == nil {
				slot.Suggestions = []GenSuggestion{}
			}
		}
	}
	if gen.TravelTips == nil {
		gen.TravelTips = []string{}
	}
	if gen.LocalPhrases == nil {
		gen.LocalPhrases = []GenPhrase{}
	}
	if gen.HotelSuggestions == nil {
		gen.HotelSuggestions = []GenHotelSuggestion{}
	}
	return &gen, nil
}

// ── Generated fallback-content shapes ────────────────────────────────

type GenHotel struct {
	Name          string   `json:"name"`
	Tier          string   `json:"tier"`
	StarRating    float64  `json:"starRating"`
	PricePerNight float64  `json:"pricePerNight"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	CheckInTime   string   `json:"checkInTime"`
	CheckOutTime  string   `json:"checkOutTime"`
	Website       string   `json:"website"`
	Address       string   `json:"address"`
	Rating        float64  `json:"rating"`
	ReviewCount   float64  `json:"reviewCount"`
	Tag           string   `json:"tag"`
	MapLat        float64  `json:"mapLat"`
	MapLng        float64  `json:"mapLng"`
}

type GenRestaurant struct {
	Name           string  `json:"name"`
	CuisineType    string  `json:"cuisineType"`
	PricePerPerson float64 `json:"pricePerPerson"`
	PriceRange     string  `json:"priceRange"`
	IsVeg          bool    `json:"isVeg"`
	MustTryDishes  string  `json:"mustTryDishes"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	OpenTime       string  `json:"openTime"`
	CloseTime      string  `json:"closeTime"`
	Rating         float64 `json:"rating"`
	ReviewCount    float64 `json:"reviewCount"`
	Website        string  `json:"website"`
	MapLat         float64 `json:"mapLat"`
	MapLng         float64 `json:"mapLng"`
}

type GenDestination struct {
	State           string  `json:"state"`
	Region          string  `json:"region"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	BestSeason      string  `json:"bestSeason"`
	AvgDurationDays float64 `json:"avgDurationDays"`
	MapLat          float64 `json:"mapLat"`
	MapLng          float64 `json:"mapLng"`
}

// ParseHotelList extracts and decodes a generated hotel array. Records
// with an empty name are dropped, never repaired.
func ParseHotelList(raw string) ([]GenHotel, error) {
	block, err := ExtractJSONBlock(raw)
	if err != nil {
		return nil, err
	}
	var hotels []GenHotel
	if err := json.Unmarshal([]byte(block), &hotels); err != nil {
		// Some models wrap the array in {"hotels": [...]}.
		var wrapped struct {
			Hotels []GenHotel `json:"hotels"`
		}
		if err2 := json.Unmarshal([]byte(block), &wrapped); err2 != nil || len(wrapped.Hotels) == 0 {
			return nil, malformedf("model response is not a hotel array: %v", err)
		}
		hotels = wrapped.Hotels
	}
	out := hotels[:0]
	for _, h := range hotels {
		if strings.TrimSpace(h.Name) != "" {
			out = append(out, h)
		}
	}
	if len(out) == 0 {
		return nil, malformedf("model returned no usable hotel records")
	}
	return out, nil
}

func ParseRestaurantList(raw string) ([]GenRestaurant, error) {
	block, err := ExtractJSONBlock(raw)
	if err != nil {
		return nil, err
	}
	var restaurants []GenRestaurant
	if err := json.Unmarshal([]byte(block), &restaurants); err != nil {
		var wrapped struct {
			Restaurants []GenRestaurant `json:"restaurants"`
		}
		if err2 := json.Unmarshal([]byte(block), &wrapped); err2 != nil || len(wrapped.Restaurants) == 0 {
			return nil, malformedf("model response is not a restaurant array: %v", err)
		}
		restaurants = wrapped.Restaurants
	}
	out := restaurants[:0]
	for _, r := range restaurants {
		if strings.TrimSpace(r.Name) != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, malformedf("model returned no usable restaurant records")
	}
	return out, nil
}

func ParseDestinationMeta(raw string) (*GenDestination, error) {
	block, err := ExtractJSONBlock(raw)
	if err != nil {
		return nil, err
	}
	var d GenDestination
	if err := json.Unmarshal([]byte(block), &d); err != nil {
		return nil, malformedf("model response is not a destination object: %v", err)
	}
	return &d, nil
}
