package planner

import (
	"fmt"
	"time"

	"tripwise/budget"
	"tripwise/models"
	"tripwise/utils"
)

const maxEmbeddedHotels = 3

// Meta is the non-persisted block returned alongside a generated
// itinerary: timings, tips and the model's own hotel suggestions.
type Meta struct {
	GenerationTimeMs int64                `json:"generationTimeMs"`
	ModelUsed        string               `json:"modelUsed"`
	TravelTips       []string             `json:"travelTips"`
	BestTimeToVisit  string               `json:"bestTimeToVisit"`
	LocalPhrases     []models.LocalPhrase `json:"localPhrases"`
	HotelSuggestions []GenHotelSuggestion `json:"hotelSuggestions"`
}

// BuildItinerary merges the repaired generation output, the computed
// budget plan and the resolved context into the final aggregate. The
// stored breakdown is always the deterministic one — the model's own
// budget figures are never trusted.
func BuildItinerary(req models.TripRequest, tier models.Tier, plan budget.Plan, c Context, gen *GenItinerary, userID, destinationID, modelUsed string, elapsed time.Duration) (*models.Itinerary, *Meta) {
	startDate := utils.ParseDate(req.StartDate)
	endDate := utils.ParseDate(req.EndDate)
	if endDate == nil && startDate != nil {
		end := startDate.AddDate(0, 0, req.Days-1)
		endDate = &end
	}

	title := gen.Title
	if title == "" {
		title = fmt.Sprintf("%d-Day %s Itinerary", req.Days, utils.ShortName(req.Destination))
	}

	it := &models.Itinerary{
		ItineraryID:          utils.GenerateRandomString(13),
		UserID:               userID,
		DestinationID:        destinationID,
		Title:                title,
		OriginCity:           req.OriginCity,
		TotalDays:            req.Days,
		StartDate:            startDate,
		EndDate:              endDate,
		Adults:               req.Adults,
		Children:             req.Children,
		BudgetTier:           tier,
		Interests:            nonNil(req.Interests),
		DailyBudgetPerPerson: req.DailyBudgetPerPerson,
		ShareToken:           utils.NewShareToken(),
		Status:               models.StatusGenerated,
		Days:                 mapDays(gen.Days, startDate),
		Hotels:               mapHotelRefs(c.Hotels, tier, startDate, endDate),
		BudgetBreakdown:      plan.Breakdowns,
		TravelTips:           gen.TravelTips,
		BestTimeToVisit:      gen.BestTimeToVisit,
		LocalPhrases:         mapPhrases(gen.LocalPhrases),
		AiModelUsed:          modelUsed,
		GenerationTimeMs:     elapsed.Milliseconds(),
		CreatedAt:            time.Now(),
	}

	meta := &Meta{
		GenerationTimeMs: elapsed.Milliseconds(),
		ModelUsed:        modelUsed,
		TravelTips:       gen.TravelTips,
		BestTimeToVisit:  gen.BestTimeToVisit,
		LocalPhrases:     it.LocalPhrases,
		HotelSuggestions: gen.HotelSuggestions,
	}
	return it, meta
}

func mapDays(genDays []GenDay, startDate *time.Time) []models.Day {
	days := make([]models.Day, 0, len(genDays))
	for _, gd := range genDays {
		day := models.Day{
			DayNumber: gd.DayNumber,
			Title:     gd.Title,
			Summary:   gd.Summary,
			Slots:     make([]models.Slot, 0, len(gd.Slots)),
		}
		if day.Title == "" {
			day.Title = fmt.Sprintf("Day %d", gd.DayNumber)
		}
		if startDate != nil {
			d := startDate.AddDate(0, 0, gd.DayNumber-1)
			day.Date = &d
		}
		for _, gs := range gd.Slots {
			slot := models.Slot{
				SlotOrder:     gs.SlotOrder,
				TimeLabel:     gs.TimeLabel,
				Type:          models.CoerceSlotType(gs.Type),
				Title:         gs.Title,
				Description:   gs.Description,
				DurationMins:  int(gs.DurationMins),
				EstimatedCost: int(gs.EstimatedCost),
				AiTip:         gs.AiTip,
				Suggestions:   make([]models.Suggestion, 0, len(gs.Suggestions)),
			}
			if slot.Title == "" {
				slot.Title = "Activity"
			}
			for _, sg := range gs.Suggestions {
				slot.Suggestions = append(slot.Suggestions, models.Suggestion{
					Name:           sg.Name,
					Cuisine:        sg.Cuisine,
					PricePerPerson: int(sg.PricePerPerson),
					MustOrder:      sg.MustOrder,
					Vibe:           sg.Vibe,
					IsVeg:          sg.IsVeg,
				})
			}
			day.Slots = append(day.Slots, slot)
		}
		days = append(days, day)
	}
	return days
}

func mapHotelRefs(hotels []models.Hotel, tier models.Tier, checkIn, checkOut *time.Time) []models.ItineraryHotel {
	refs := []models.ItineraryHotel{}
	for i, h := range hotels {
		if i >= maxEmbeddedHotels {
			break
		}
		refs = append(refs, models.ItineraryHotel{
			HotelID:       h.HotelID,
			Name:          h.Name,
			Tier:          tier,
			PricePerNight: h.PricePerNight,
			IsSelected:    true,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
		})
	}
	return refs
}

func mapPhrases(genPhrases []GenPhrase) []models.LocalPhrase {
	phrases := []models.LocalPhrase{}
	for _, p := range genPhrases {
		meaning := p.Meaning
		if meaning == "" {
			meaning = p.Translation
		}
		if p.Phrase == "" {
			continue
		}
		phrases = append(phrases, models.LocalPhrase{Phrase: p.Phrase, Meaning: meaning})
	}
	return phrases
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
