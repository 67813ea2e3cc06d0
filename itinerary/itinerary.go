package itinerary

import (
	"encoding/json"
	"net/http"
	"time"

	"tripwise/db"
	"tripwise/globals"
	"tripwise/models"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMyItineraries lists the requesting user's itineraries, newest first.
// GET /api/itineraries
func GetMyItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := utils.ParseQueryOptions(r)
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(q.Limit).
		SetSkip(q.Offset)

	itineraries, err := utils.FindAndDecode[models.Itinerary](r.Context(), db.ItinerariesCollection, bson.M{"userid": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GetItinerary returns one itinerary. The owner can always read it;
// anyone else only when it has been shared.
// GET /api/itineraries/:itineraryid
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := findItinerary(w, r, ps.ByName("itineraryid"))
	if !ok {
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if it.UserID != userID && it.Status != models.StatusShared {
		utils.RespondWithError(w, http.StatusForbidden, "This itinerary is private")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GetSharedItinerary resolves a share token. No auth required.
// GET /api/shared/:token
func GetSharedItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var it models.Itinerary
	err := db.ItinerariesCollection.FindOne(r.Context(), bson.M{
		"shareToken": ps.ByName("token"),
		"status":     models.StatusShared,
	}).Decode(&it)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Shared itinerary not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// SaveItinerary bookmarks an itinerary for the requesting user and
// promotes its status from generated to saved.
// POST /api/itineraries/:itineraryid/save
func SaveItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	it, ok := findItinerary(w, r, ps.ByName("itineraryid"))
	if !ok {
		return
	}

	var input struct {
		Note string `json:"note"`
	}
	_ = json.NewDecoder(r.Body).Decode(&input)

	_, err := db.SavedPlansCollection.UpdateOne(
		r.Context(),
		bson.M{"userid": userID, "itineraryid": it.ItineraryID},
		bson.M{"$set": models.SavedPlan{
			UserID:      userID,
			ItineraryID: it.ItineraryID,
			Note:        input.Note,
			SavedAt:     time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}

	if it.UserID == userID && it.Status == models.StatusGenerated {
		_, _ = db.ItinerariesCollection.UpdateOne(
			r.Context(),
			bson.M{"itineraryid": it.ItineraryID},
			bson.M{"$set": bson.M{"status": models.StatusSaved}},
		)
	}

	utils.SendResponse(w, http.StatusOK, nil, "Itinerary saved", nil)
}

// UnsaveItinerary removes a bookmark.
// DELETE /api/itineraries/:itineraryid/save
func UnsaveItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.SavedPlansCollection.DeleteOne(r.Context(), bson.M{
		"userid":      userID,
		"itineraryid": ps.ByName("itineraryid"),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unsave itinerary")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary was not saved")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Itinerary unsaved", nil)
}

// GetSavedPlans lists the itineraries the user has bookmarked.
// GET /api/saved
func GetSavedPlans(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	saved, err := utils.FindAndDecode[models.SavedPlan](r.Context(), db.SavedPlansCollection,
		bson.M{"userid": userID}, options.Find().SetSort(bson.M{"savedAt": -1}))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch saved plans")
		return
	}

	ids := make([]string, 0, len(saved))
	for _, s := range saved {
		ids = append(ids, s.ItineraryID)
	}

	itineraries := []models.Itinerary{}
	if len(ids) > 0 {
		itineraries, err = utils.FindAndDecode[models.Itinerary](r.Context(), db.ItinerariesCollection,
			bson.M{"itineraryid": bson.M{"$in": ids}})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch saved itineraries")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"saved":       saved,
		"itineraries": itineraries,
	})
}

// ShareItinerary marks an itinerary shared and returns its share link.
// POST /api/itineraries/:itineraryid/share
func ShareItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	it, ok := findItinerary(w, r, ps.ByName("itineraryid"))
	if !ok {
		return
	}
	if it.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Only the owner can share an itinerary")
		return
	}

	if it.Status != models.StatusShared {
		_, err := db.ItinerariesCollection.UpdateOne(
			r.Context(),
			bson.M{"itineraryid": it.ItineraryID},
			bson.M{"$set": bson.M{"status": models.StatusShared}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to share itinerary")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"shareToken": it.ShareToken,
		"shareUrl":   shareURL(it.ShareToken),
	})
}

// DeleteItinerary removes an itinerary and its bookmarks. Owner only.
// DELETE /api/itineraries/:itineraryid
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	it, ok := findItinerary(w, r, ps.ByName("itineraryid"))
	if !ok {
		return
	}
	if it.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Only the owner can delete an itinerary")
		return
	}

	if _, err := db.ItinerariesCollection.DeleteOne(r.Context(), bson.M{"itineraryid": it.ItineraryID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete itinerary")
		return
	}
	_, _ = db.SavedPlansCollection.DeleteMany(r.Context(), bson.M{"itineraryid": it.ItineraryID})

	utils.SendResponse(w, http.StatusOK, nil, "Itinerary deleted", nil)
}

func findItinerary(w http.ResponseWriter, r *http.Request, itineraryID string) (models.Itinerary, bool) {
	var it models.Itinerary
	err := db.ItinerariesCollection.FindOne(r.Context(), bson.M{"itineraryid": itineraryID}).Decode(&it)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return it, false
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itinerary")
		return it, false
	}
	return it, true
}

func shareURL(token string) string {
	return globals.FrontendURL + "/trips/shared/" + token
}
