package destinations

import (
	"errors"
	"net/http"

	"tripwise/db"
	"tripwise/fallback"
	"tripwise/models"
	"tripwise/planner"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler serves destination reads. Unknown slugs are filled through
// the cache-aside generator instead of 404ing.
type Handler struct {
	Filler *fallback.Filler
}

func NewHandler(filler *fallback.Filler) *Handler {
	return &Handler{Filler: filler}
}

// List returns active destinations, optionally filtered by category.
// GET /api/destinations
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{"isActive": true}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	if region := r.URL.Query().Get("region"); region != "" {
		filter["region"] = region
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	q := utils.ParseQueryOptions(r)
	opts := options.Find().
		SetSort(bson.M{"name": 1}).
		SetLimit(q.Limit).
		SetSkip(q.Offset)

	destinations, err := utils.FindAndDecode[models.Destination](r.Context(), db.DestinationsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destinations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, destinations)
}

// Get resolves a destination slug, generating the record on a miss.
// GET /api/destinations/:slug
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dest, err := h.Filler.UpsertDestination(r.Context(), slugToQuery(ps.ByName("slug")))
	if err != nil {
		writeFillError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dest)
}

// Hotels lists a destination's hotels, generating a set on first
// request. GET /api/destinations/:slug/hotels?tier=standard
func (h *Handler) Hotels(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tier := models.Tier("")
	if t := r.URL.Query().Get("tier"); t != "" {
		parsed, err := models.ParseTier(t)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		tier = parsed
	}

	hotels, dest, err := h.Filler.HotelsBySlug(r.Context(), ps.ByName("slug"), tier)
	if err != nil {
		writeFillError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"destination": dest,
		"hotels":      hotels,
	})
}

// Restaurants lists a destination's restaurants with optional veg and
// price-range filters, generating a set on first request.
// GET /api/destinations/:slug/restaurants?veg=true&priceRange=budget
func (h *Handler) Restaurants(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	isVeg := utils.ParseBoolPtr(r.URL.Query().Get("veg"))
	priceRange := models.PriceRange("")
	if p := r.URL.Query().Get("priceRange"); p != "" {
		priceRange = models.CoercePriceRange(p)
	}

	restaurants, dest, err := h.Filler.RestaurantsBySlug(r.Context(), ps.ByName("slug"), isVeg, priceRange)
	if err != nil {
		writeFillError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"destination": dest,
		"restaurants": restaurants,
	})
}

// Attractions lists curated attractions for a destination. There is no
// generated fallback for attractions; an unknown slug returns an empty
// list alongside the (possibly generated) destination.
// GET /api/destinations/:slug/attractions
func (h *Handler) Attractions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dest, err := h.Filler.UpsertDestination(r.Context(), slugToQuery(ps.ByName("slug")))
	if err != nil {
		writeFillError(w, err)
		return
	}

	attractions, err := utils.FindAndDecode[models.Attraction](r.Context(), db.AttractionsCollection,
		bson.M{"destinationid": dest.DestinationID, "isActive": true},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch attractions")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"destination": dest,
		"attractions": attractions,
	})
}

func slugToQuery(slug string) string {
	out := []byte(slug)
	for i := range out {
		if out[i] == '-' {
			out[i] = ' '
		}
	}
	return string(out)
}

// writeFillError maps fill failures: bad model output and provider
// trouble are both upstream conditions from the caller's view.
func writeFillError(w http.ResponseWriter, err error) {
	var uerr *planner.UpstreamError
	var merr *planner.MalformedError

	switch {
	case errors.As(err, &uerr), errors.As(err, &merr):
		utils.RespondWithError(w, http.StatusBadGateway, "Data service unavailable, please retry")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch destination data")
	}
}
