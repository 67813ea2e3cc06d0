package reviews

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tripwise/db"
	"tripwise/models"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create posts a review for a destination, optionally tied to a
// completed itinerary. POST /api/reviews
func Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		DestinationID string `json:"destinationid"`
		ItineraryID   string `json:"itineraryid"`
		Rating        int    `json:"rating"`
		Comment       string `json:"comment"`
		TripDate      string `json:"tripDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.DestinationID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destinationid is required")
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	err := db.DestinationsCollection.FindOne(r.Context(), bson.M{"destinationid": input.DestinationID}).Err()
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Destination not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to verify destination")
		return
	}

	review := models.Review{
		ReviewID:      utils.GetUUID(),
		UserID:        userID,
		DestinationID: input.DestinationID,
		ItineraryID:   input.ItineraryID,
		Rating:        input.Rating,
		Comment:       strings.TrimSpace(input.Comment),
		TripDate:      utils.ParseDate(input.TripDate),
		CreatedAt:     time.Now(),
	}

	if _, err := db.ReviewsCollection.InsertOne(r.Context(), review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to post review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// List returns reviews for a destination, newest first.
// GET /api/reviews?destinationid=...
func List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	destinationID := r.URL.Query().Get("destinationid")
	if destinationID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destinationid query parameter is required")
		return
	}

	q := utils.ParseQueryOptions(r)
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(q.Limit).
		SetSkip(q.Offset)

	reviews, err := utils.FindAndDecode[models.Review](r.Context(), db.ReviewsCollection,
		bson.M{"destinationid": destinationID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reviews)
}

// Delete removes the requesting user's review.
// DELETE /api/reviews/:reviewid
func Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.ReviewsCollection.DeleteOne(r.Context(), bson.M{
		"reviewid": ps.ByName("reviewid"),
		"userid":   userID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Review deleted", nil)
}
