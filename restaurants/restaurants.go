package restaurants

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

// List returns restaurants filtered by destination, veg preference and
// price range. GET /api/restaurants?destinationid=...&veg=true&priceRange=mid
func List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	filter := bson.M{"isActive": true}

	if destID := q.Get("destinationid"); destID != "" {
		filter["destinationid"] = destID
	}
	if isVeg := utils.ParseBoolPtr(q.Get("veg")); isVeg != nil {
		filter["isVeg"] = *isVeg
	}
	if p := q.Get("priceRange"); p != "" {
		filter["priceRange"] = models.CoercePriceRange(p)
	}
	if cuisine := q.Get("cuisine"); cuisine != "" {
		filter["cuisineType"] = bson.M{"$regex": cuisine, "$options": "i"}
	}

	opt := utils.ParseQueryOptions(r)
	opts := options.Find().
		SetSort(bson.M{"rating": -1}).
		SetLimit(opt.Limit).
		SetSkip(opt.Offset)

	restaurants, err := utils.FindAndDecode[models.Restaurant](r.Context(), db.RestaurantsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch restaurants")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, restaurants)
}

// Get returns one restaurant by id.
// GET /api/restaurants/:restaurantid
func Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var restaurant models.Restaurant
	err := db.RestaurantsCollection.FindOne(r.Context(), bson.M{"restaurantid": ps.ByName("restaurantid")}).Decode(&restaurant)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch restaurant")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, restaurant)
}
