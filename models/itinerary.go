package models

import "time"

// Slot types inside a day.
const (
	SlotAttraction = "attraction"
	SlotFood       = "food"
	SlotTransport  = "transport"
	SlotHotel      = "hotel"
	SlotFree       = "free"
)

// CoerceSlotType maps unknown slot types to attraction.
func CoerceSlotType(s string) string {
	switch s {
	case SlotAttraction, SlotFood, SlotTransport, SlotHotel, SlotFree:
		return s
	}
	return SlotAttraction
}

// Suggestion is a named restaurant option attached to a food slot.
type Suggestion struct {
	Name           string `json:"name" bson:"name"`
	Cuisine        string `json:"cuisine" bson:"cuisine"`
	PricePerPerson int    `json:"pricePerPerson" bson:"pricePerPerson"`
	MustOrder      string `json:"mustOrder" bson:"mustOrder"`
	Vibe           string `json:"vibe" bson:"vibe"`
	IsVeg          bool   `json:"isVeg" bson:"isVeg"`
}

// Slot is one scheduled activity, meal or transfer within a day.
type Slot struct {
	SlotOrder     int          `json:"slotOrder" bson:"slotOrder"`
	TimeLabel     string       `json:"timeLabel" bson:"timeLabel"`
	Type          string       `json:"type" bson:"type"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description" bson:"description"`
	DurationMins  int          `json:"durationMins" bson:"durationMins"`
	EstimatedCost int          `json:"estimatedCost" bson:"estimatedCost"`
	AiTip         string       `json:"aiTip" bson:"aiTip"`
	Suggestions   []Suggestion `json:"suggestions" bson:"suggestions"`
}

type Day struct {
	DayNumber int        `json:"dayNumber" bson:"dayNumber"`
	Date      *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Title     string     `json:"title" bson:"title"`
	Summary   string     `json:"summary" bson:"summary"`
	Slots     []Slot     `json:"slots" bson:"slots"`
}

// BudgetBreakdown is one tier's cost split for the full trip.
// Invariant: Total == Accommodation+Food+Transport+EntryFees+Miscellaneous.
type BudgetBreakdown struct {
	Tier          Tier `json:"tier" bson:"tier"`
	Accommodation int  `json:"accommodation" bson:"accommodation"`
	Food          int  `json:"food" bson:"food"`
	Transport     int  `json:"transport" bson:"transport"`
	EntryFees     int  `json:"entryFees" bson:"entryFees"`
	Miscellaneous int  `json:"miscellaneous" bson:"miscellaneous"`
	Total         int  `json:"total" bson:"total"`
	PerPerson     int  `json:"perPerson" bson:"perPerson"`
}

// ItineraryHotel is an embedded hotel selection on an itinerary.
type ItineraryHotel struct {
	HotelID       string     `json:"hotelid" bson:"hotelid"`
	Name          string     `json:"name" bson:"name"`
	Tier          Tier       `json:"tier" bson:"tier"`
	PricePerNight int        `json:"pricePerNight" bson:"pricePerNight"`
	IsSelected    bool       `json:"isSelected" bson:"isSelected"`
	CheckIn       *time.Time `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
}

type LocalPhrase struct {
	Phrase  string `json:"phrase" bson:"phrase"`
	Meaning string `json:"meaning" bson:"meaning"`
}

// Itinerary statuses: draft -> generated -> saved -> shared.
const (
	StatusDraft     = "draft"
	StatusGenerated = "generated"
	StatusSaved     = "saved"
	StatusShared    = "shared"
)

type Itinerary struct {
	ItineraryID          string            `json:"itineraryid" bson:"itineraryid"`
	UserID               string            `json:"userid,omitempty" bson:"userid,omitempty"`
	DestinationID        string            `json:"destinationid" bson:"destinationid"`
	Title                string            `json:"title" bson:"title"`
	OriginCity           string            `json:"originCity" bson:"originCity"`
	TotalDays            int               `json:"totalDays" bson:"totalDays"`
	StartDate            *time.Time        `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate              *time.Time        `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Adults               int               `json:"adults" bson:"adults"`
	Children             int               `json:"children" bson:"children"`
	BudgetTier           Tier              `json:"budgetTier" bson:"budgetTier"`
	Interests            []string          `json:"interests" bson:"interests"`
	DailyBudgetPerPerson int               `json:"dailyBudgetPerPerson" bson:"dailyBudgetPerPerson"`
	ShareToken           string            `json:"shareToken" bson:"shareToken"`
	Status               string            `json:"status" bson:"status"`
	Days                 []Day             `json:"days" bson:"days"`
	Hotels               []ItineraryHotel  `json:"hotels" bson:"hotels"`
	BudgetBreakdown      []BudgetBreakdown `json:"budgetBreakdown" bson:"budgetBreakdown"`
	TravelTips           []string          `json:"travelTips" bson:"travelTips"`
	BestTimeToVisit      string            `json:"bestTimeToVisit,omitempty" bson:"bestTimeToVisit,omitempty"`
	LocalPhrases         []LocalPhrase     `json:"localPhrases" bson:"localPhrases"`
	AiModelUsed          string            `json:"aiModelUsed,omitempty" bson:"aiModelUsed,omitempty"`
	GenerationTimeMs     int64             `json:"generationTimeMs,omitempty" bson:"generationTimeMs,omitempty"`
	CreatedAt            time.Time         `json:"createdAt" bson:"createdAt"`
}

// SavedPlan bookmarks an itinerary for a user.
type SavedPlan struct {
	UserID      string    `json:"userid" bson:"userid"`
	ItineraryID string    `json:"itineraryid" bson:"itineraryid"`
	Note        string    `json:"note,omitempty" bson:"note,omitempty"`
	SavedAt     time.Time `json:"savedAt" bson:"savedAt"`
}
