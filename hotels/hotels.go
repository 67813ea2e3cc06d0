package hotels

import (
	"net/http"

	"tripwise/db"
	"tripwise/models"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns hotels filtered by destination, tier and price bounds.
// GET /api/hotels?destinationid=...&tier=economy&maxPrice=2500
func List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	filter := bson.M{"isActive": true}

	if destID := q.Get("destinationid"); destID != "" {
		filter["destinationid"] = destID
	}
	if t := q.Get("tier"); t != "" {
		tier, err := models.ParseTier(t)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter["tier"] = tier
	}
	price := bson.M{}
	if minPrice := utils.ParseInt(q.Get("minPrice")); minPrice > 0 {
		price["$gte"] = minPrice
	}
	if maxPrice := utils.ParseInt(q.Get("maxPrice")); maxPrice > 0 {
		price["$lte"] = maxPrice
	}
	if len(price) > 0 {
		filter["pricePerNight"] = price
	}

	opt := utils.ParseQueryOptions(r)
	opts := options.Find().
		SetSort(bson.M{"pricePerNight": 1}).
		SetLimit(opt.Limit).
		SetSkip(opt.Offset)

	hotels, err := utils.FindAndDecode[models.Hotel](r.Context(), db.HotelsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, hotels)
}

// Get returns one hotel by id.
// GET /api/hotels/:hotelid
func Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var hotel models.Hotel
	err := db.HotelsCollection.FindOne(r.Context(), bson.M{"hotelid": ps.ByName("hotelid")}).Decode(&hotel)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch hotel")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, hotel)
}
