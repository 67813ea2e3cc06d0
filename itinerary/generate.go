package itinerary

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripwise/budget"
	"tripwise/models"
	"tripwise/planner"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler carries the generation engine so routes stay wireable with a
// fake engine in tests.
type Handler struct {
	Engine *planner.Engine
}

func NewHandler(engine *planner.Engine) *Handler {
	return &Handler{Engine: engine}
}

// Generate runs the full itinerary pipeline for a trip request.
// POST /api/generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)

	it, meta, err := h.Engine.GeneratePlan(r.Context(), req, userID)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"itinerary": it,
		"shareUrl":  shareURL(it.ShareToken),
		"meta":      meta,
	})
}

// Marketing copy attached to each package tier in the instant estimate.
var packageCopy = map[models.Tier]struct {
	Stay       string
	Transport  string
	Food       string
	Highlights []string
}{
	models.TierEconomy: {
		Stay:       "Budget guesthouses & hostels",
		Transport:  "Trains, buses & shared cabs",
		Food:       "Dhabas & street food",
		Highlights: []string{"Local guided walks", "Street food trail", "Budget temple visits"},
	},
	models.TierStandard: {
		Stay:       "3-4 star hotels & boutique havelis",
		Transport:  "Private cab + trains",
		Food:       "Curated restaurants & local gems",
		Highlights: []string{"Guided heritage tours", "Curated dining picks", "AC private transport"},
	},
	models.TierLuxury: {
		Stay:       "Heritage palaces & 5-star resorts",
		Transport:  "Chauffeur-driven luxury SUV",
		Food:       "Fine dining & private chef",
		Highlights: []string{"Private heritage access", "Spa & wellness daily", "Exclusive local experiences"},
	},
}

// GetPackages returns instant per-tier price estimates, pure math with
// no generation call. GET /api/generate/packages
func (h *Handler) GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	days := utils.ParseInt(q.Get("days"))
	adults := utils.ParseInt(q.Get("adults"))
	children := utils.ParseInt(q.Get("children"))
	dailyBudget := utils.ParseIntDefault(q.Get("dailyBudget"), 3000)

	plan, err := budget.Calculate(days, adults, children, dailyBudget, models.TierStandard)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	packages := utils.M{}
	for _, tier := range models.Tiers {
		b := plan.Breakdown(tier)
		c := packageCopy[tier]
		packages[string(tier)] = utils.M{
			"perPerson":  b.PerPerson,
			"total":      b.Total,
			"breakdown":  b,
			"stay":       c.Stay,
			"transport":  c.Transport,
			"food":       c.Food,
			"highlights": c.Highlights,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"packages": packages})
}

// writeGenerationError maps pipeline errors onto HTTP statuses: caller
// mistakes are 400, a misbehaving model or provider is 502.
func writeGenerationError(w http.ResponseWriter, err error) {
	var verr *planner.ValidationError
	var uerr *planner.UpstreamError
	var merr *planner.MalformedError

	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &uerr):
		utils.RespondWithError(w, http.StatusBadGateway, "Generation service unavailable, please retry")
	case errors.As(err, &merr):
		utils.RespondWithError(w, http.StatusBadGateway, "Generated itinerary was unusable, please retry")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate itinerary")
	}
}
